package interfaces

import (
	"context"
	"errors"

	"cms_backend/internal/domain/entities"
)

// ErrQuoteVersionConflict is returned by Replace when the stored record moved
// past the version the caller read. The losing writer must surface a conflict,
// never retry into a silent overwrite.
var ErrQuoteVersionConflict = errors.New("quote version conflict")

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Semantics:
//   - Lookups return a zero-value Quote (ID == "") when no record exists.
//   - Writes always replace the full record; there are no partial updates.
//   - Replace is conditional on expectedVersion and bumps the stored version.
//   - GetByToken resolves through the quote_token GSI; if more than one record
//     carries the token the lowest id wins, deterministically.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByToken(ctx context.Context, token string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Replace(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
