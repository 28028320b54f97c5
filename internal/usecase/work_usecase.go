package usecase

import (
	"context"
	"errors"
	"strings"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase/interfaces"
)

var (
	ErrWorkNotFound      = errors.New("work not found")
	ErrWorkAlreadyExists = errors.New("work already exists")
	ErrInvalidWorkID     = errors.New("invalid work id")
)

// IWorkUseCase exposes construction-project CRUD. The contract is round-trip
// fidelity: the stored document comes back through the API unchanged.
type IWorkUseCase interface {
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
	List(ctx context.Context) ([]entities.Work, error)
	Update(ctx context.Context, w entities.Work) (entities.Work, error)
	Delete(ctx context.Context, id string) error
}

type WorkUseCase struct {
	repo interfaces.IWorkRepository
}

var _ IWorkUseCase = (*WorkUseCase)(nil)

func NewWorkUseCase(repo interfaces.IWorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

func (u *WorkUseCase) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	w.ID = strings.TrimSpace(w.ID)
	if w.ID == "" {
		return entities.Work{}, ErrInvalidWorkID
	}

	if existing, err := u.repo.GetByID(ctx, w.ID); err != nil {
		return entities.Work{}, err
	} else if existing.ID != "" {
		return entities.Work{}, ErrWorkAlreadyExists
	}

	return u.repo.Create(ctx, w)
}

func (u *WorkUseCase) GetByID(ctx context.Context, id string) (entities.Work, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Work{}, ErrInvalidWorkID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Work{}, err
	}
	if w.ID == "" {
		return entities.Work{}, ErrWorkNotFound
	}
	return w, nil
}

func (u *WorkUseCase) List(ctx context.Context) ([]entities.Work, error) {
	return u.repo.List(ctx)
}

func (u *WorkUseCase) Update(ctx context.Context, w entities.Work) (entities.Work, error) {
	w.ID = strings.TrimSpace(w.ID)
	if w.ID == "" {
		return entities.Work{}, ErrInvalidWorkID
	}

	stored, err := u.repo.GetByID(ctx, w.ID)
	if err != nil {
		return entities.Work{}, err
	}
	if stored.ID == "" {
		return entities.Work{}, ErrWorkNotFound
	}

	return u.repo.Update(ctx, w)
}

func (u *WorkUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkID
	}
	return u.repo.Delete(ctx, id)
}
