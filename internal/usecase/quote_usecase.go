package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase/interfaces"
	"cms_backend/pkg/cnpj"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteAlreadyExists    = errors.New("quote already exists")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
	ErrQuoteForbidden        = errors.New("cnpj not authorized for this quote")
	ErrNoInvitedSuppliers    = errors.New("quote has no invited suppliers")
	ErrQuoteTokenMismatch    = errors.New("quote token mismatch")
	ErrQuoteAlreadySubmitted = errors.New("quote already submitted")
	ErrQuoteNotOpen          = errors.New("quote not open for submission")
)

const createdAtLayout = "02/01/2006 às 15:04:05"

// IQuoteUseCase exposes the supplier quotation (LPU) workflow.
//
// Internal-user operations: Create/List/Get/Update/Delete plus the two state
// actions RequestRevision and Approve.
//
// Anonymous supplier operations: SupplierLogin (read gate: quote token + CNPJ
// against the invitation list) and Submit (write gate: same pair revalidated
// against the specific quote id, rejected once the quote left the open states).
type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error

	SupplierLogin(ctx context.Context, token, rawCNPJ string) (entities.Quote, error)
	Submit(ctx context.Context, quoteID, token, rawCNPJ, signerName string, prices, quantities map[string]float64) (entities.Quote, error)
	RequestRevision(ctx context.Context, quoteID, comment string) (entities.Quote, error)
	Approve(ctx context.Context, quoteID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	suppliers interfaces.ISupplierRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, suppliers interfaces.ISupplierRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, suppliers: suppliers}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if !entities.ValidQuoteStatus(q.Status) {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	if q.CreatedAt == "" {
		q.CreatedAt = time.Now().Format(createdAtLayout)
	}
	q.Version = 1

	if existing, err := u.repo.GetByID(ctx, q.ID); err != nil {
		return entities.Quote{}, err
	} else if existing.ID != "" {
		return entities.Quote{}, ErrQuoteAlreadyExists
	}

	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

// Update replaces the full record on behalf of an internal user. The stored
// quote token survives the replace: rotating it would invalidate links already
// distributed to suppliers.
func (u *QuoteUseCase) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if q.Status != "" && !entities.ValidQuoteStatus(q.Status) {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	stored, err := u.repo.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if stored.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if stored.QuoteToken != "" {
		q.QuoteToken = stored.QuoteToken
	}
	if q.Status == "" {
		q.Status = stored.Status
	}
	if q.CreatedAt == "" {
		q.CreatedAt = stored.CreatedAt
	}

	return u.repo.Replace(ctx, q, stored.Version)
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return u.repo.Delete(ctx, id)
}

// SupplierLogin is the anonymous read gate. It resolves the quote by token,
// then walks the invitation list comparing normalized CNPJs against the
// caller's. Read-only: repeated calls never mutate the quote or the directory.
func (u *QuoteUseCase) SupplierLogin(ctx context.Context, token, rawCNPJ string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if err := u.authorizeCNPJ(ctx, q, rawCNPJ); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// authorizeCNPJ matches the caller's CNPJ against the directory entries
// referenced by the invitation list. Unresolvable references are skipped, not
// fatal: a stale invitation must not lock out the remaining suppliers.
func (u *QuoteUseCase) authorizeCNPJ(ctx context.Context, q entities.Quote, rawCNPJ string) error {
	if len(q.InvitedSuppliers) == 0 {
		return ErrNoInvitedSuppliers
	}

	want := cnpj.Normalize(rawCNPJ)
	if want == "" {
		return ErrQuoteForbidden
	}

	for _, inv := range q.InvitedSuppliers {
		if inv.ID == "" {
			continue
		}
		sup, err := u.suppliers.GetByID(ctx, inv.ID)
		if err != nil || sup.ID == "" {
			continue
		}
		if cnpj.Normalize(sup.CNPJ) == want {
			return nil
		}
	}
	return ErrQuoteForbidden
}

// Submit is the write path for an invited supplier. The token is revalidated
// against this specific quote id (not just "any quote carrying the token") and
// the quote must still be open. The stored prices/quantities become exactly
// the submitted payload; nothing is merged with prior values.
//
// signerName is accepted for the submission receipt; the quote record has no
// field for it and it is not persisted.
func (u *QuoteUseCase) Submit(ctx context.Context, quoteID, token, rawCNPJ, signerName string, prices, quantities map[string]float64) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if q.QuoteToken == "" || q.QuoteToken != strings.TrimSpace(token) {
		return entities.Quote{}, ErrQuoteTokenMismatch
	}
	if err := u.authorizeCNPJ(ctx, q, rawCNPJ); err != nil {
		return entities.Quote{}, err
	}

	if q.Status == entities.QuoteStatusSubmitted {
		return entities.Quote{}, ErrQuoteAlreadySubmitted
	}
	if !q.Open() {
		return entities.Quote{}, ErrQuoteNotOpen
	}

	if prices == nil {
		prices = map[string]float64{}
	}
	if quantities == nil {
		quantities = map[string]float64{}
	}
	q.Prices = prices
	q.Quantities = quantities
	q.Status = entities.QuoteStatusSubmitted

	return u.repo.Replace(ctx, q, q.Version)
}

// RequestRevision reopens a quote for supplier input, clearing the previous
// submission. Accepted regardless of current status. The comment is not
// persisted: the record has no revision-history field.
func (u *QuoteUseCase) RequestRevision(ctx context.Context, quoteID, comment string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q.Status = entities.QuoteStatusWaiting
	q.Prices = map[string]float64{}
	q.Quantities = map[string]float64{}

	return u.repo.Replace(ctx, q, q.Version)
}

// Approve marks the quote approved. Accepted regardless of current status.
func (u *QuoteUseCase) Approve(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q.Status = entities.QuoteStatusApproved

	return u.repo.Replace(ctx, q, q.Version)
}
