package interfaces

import (
	"context"

	"cms_backend/internal/domain/entities"
)

// ISupplierRepository abstracts DynamoDB persistence for the supplier
// directory. The quotation access gate reads entries through GetByID; the rest
// serves the CRUD surface. Lookups return a zero-value Supplier when absent.
type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id string) error
}
