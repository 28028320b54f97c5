package interfaces

import (
	"context"

	"cms_backend/internal/domain/entities"
)

// IWorkRepository abstracts DynamoDB persistence for Work records.
// Lookups return a zero-value Work when absent.
type IWorkRepository interface {
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
	List(ctx context.Context) ([]entities.Work, error)
	Update(ctx context.Context, w entities.Work) (entities.Work, error)
	Delete(ctx context.Context, id string) error
}
