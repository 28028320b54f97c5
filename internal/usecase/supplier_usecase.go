package usecase

import (
	"context"
	"errors"
	"strings"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase/interfaces"
)

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrSupplierAlreadyExists = errors.New("supplier already exists")
	ErrInvalidSupplierID     = errors.New("invalid supplier id")
)

// ISupplierUseCase exposes the supplier directory CRUD. Supplier ids are
// caller-assigned (the frontend derives them from the CNPJ).
type ISupplierUseCase interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type SupplierUseCase struct {
	repo interfaces.ISupplierRepository
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (u *SupplierUseCase) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}

	if existing, err := u.repo.GetByID(ctx, s.ID); err != nil {
		return entities.Supplier{}, err
	} else if existing.ID != "" {
		return entities.Supplier{}, ErrSupplierAlreadyExists
	}

	return u.repo.Create(ctx, s)
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}

func (u *SupplierUseCase) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}

	stored, err := u.repo.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Supplier{}, err
	}
	if stored.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}

	return u.repo.Update(ctx, s)
}

func (u *SupplierUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSupplierID
	}
	return u.repo.Delete(ctx, id)
}
