package usecase

import (
	"context"
	"errors"
	"testing"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase/interfaces"
	mock_interfaces "cms_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Quote{ID: "q-1", Status: "weird"})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		_, err := uc.Create(context.Background(), entities.Quote{ID: "q-1"})
		if !errors.Is(err, ErrQuoteAlreadyExists) {
			t.Fatalf("expected ErrQuoteAlreadyExists, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("expected draft status, got %s", q.Status)
				}
				if q.CreatedAt == "" {
					t.Fatalf("expected created_at to be set")
				}
				if q.Version != 1 {
					t.Fatalf("expected version 1, got %d", q.Version)
				}
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Quote{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Update(context.Background(), entities.Quote{ID: "  "})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), entities.Quote{ID: "q-1"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("stored token survives the replace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		stored := entities.Quote{ID: "q-1", QuoteToken: "tok-abc", Status: entities.QuoteStatusWaiting, CreatedAt: "01/01/2025 às 10:00:00", Version: 3}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64) (entities.Quote, error) {
				if q.QuoteToken != "tok-abc" {
					t.Fatalf("expected stored token preserved, got %q", q.QuoteToken)
				}
				if q.Status != entities.QuoteStatusWaiting {
					t.Fatalf("expected stored status fallback, got %s", q.Status)
				}
				return q, nil
			},
		)

		_, err := uc.Update(context.Background(), entities.Quote{ID: "q-1", QuoteToken: "attacker-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("version conflict propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Version: 2}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(2)).Return(entities.Quote{}, interfaces.ErrQuoteVersionConflict)

		_, err := uc.Update(context.Background(), entities.Quote{ID: "q-1"})
		if !errors.Is(err, interfaces.ErrQuoteVersionConflict) {
			t.Fatalf("expected version conflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_SupplierLogin(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.SupplierLogin(context.Background(), "  ", "12345678000190")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").Return(entities.Quote{}, nil)

		_, err := uc.SupplierLogin(context.Background(), "tok-abc", "12345678000190")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("no invited suppliers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").Return(entities.Quote{ID: "q-1", QuoteToken: "tok-abc"}, nil)

		_, err := uc.SupplierLogin(context.Background(), "tok-abc", "12345678000190")
		if !errors.Is(err, ErrNoInvitedSuppliers) {
			t.Fatalf("expected ErrNoInvitedSuppliers, got %v", err)
		}
	})

	t.Run("cnpj not on invitation list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := entities.Quote{ID: "q-1", QuoteToken: "tok-abc", InvitedSuppliers: []entities.InvitedSupplier{{ID: "sup-1"}}}
		repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").Return(q, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "99.999.999/0001-99"}, nil)

		_, err := uc.SupplierLogin(context.Background(), "tok-abc", "12345678000190")
		if !errors.Is(err, ErrQuoteForbidden) {
			t.Fatalf("expected ErrQuoteForbidden, got %v", err)
		}
	})

	t.Run("formatted and bare cnpjs match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := entities.Quote{ID: "q-1", QuoteToken: "tok-abc", InvitedSuppliers: []entities.InvitedSupplier{{ID: "sup-1"}}}
		repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").Return(q, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12.345.678/0001-90"}, nil)

		res, err := uc.SupplierLogin(context.Background(), "tok-abc", "12345678000190")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", res)
		}
	})

	t.Run("unresolvable invitation is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := entities.Quote{ID: "q-1", QuoteToken: "tok-abc", InvitedSuppliers: []entities.InvitedSupplier{
			{ID: "gone"},
			{ID: "broken"},
			{ID: "sup-2"},
		}}
		repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").Return(q, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Supplier{}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "broken").Return(entities.Supplier{}, errors.New("db"))
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-2").Return(entities.Supplier{ID: "sup-2", CNPJ: "12345678000190"}, nil)

		_, err := uc.SupplierLogin(context.Background(), "tok-abc", "12.345.678/0001-90")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("login is read only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := entities.Quote{ID: "q-1", QuoteToken: "tok-abc", InvitedSuppliers: []entities.InvitedSupplier{{ID: "sup-1"}}}
		repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").Return(q, nil).Times(2)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12345678000190"}, nil).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.SupplierLogin(context.Background(), "tok-abc", "12345678000190"); err != nil {
				t.Fatalf("unexpected error on call %d: %v", i, err)
			}
		}
	})
}

func TestQuoteUseCase_Submit(t *testing.T) {
	base := func() entities.Quote {
		return entities.Quote{
			ID:               "q-1",
			QuoteToken:       "tok-abc",
			Status:           entities.QuoteStatusWaiting,
			InvitedSuppliers: []entities.InvitedSupplier{{ID: "sup-1"}},
			Version:          2,
		}
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), " ", "tok-abc", "12345678000190", "", nil, nil)
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "", nil, nil)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("token mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.Submit(context.Background(), "q-1", "tok-other", "12345678000190", "", nil, nil)
		if !errors.Is(err, ErrQuoteTokenMismatch) {
			t.Fatalf("expected ErrQuoteTokenMismatch, got %v", err)
		}
	})

	t.Run("quote without token rejects everyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		q := base()
		q.QuoteToken = ""
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Submit(context.Background(), "q-1", "", "12345678000190", "", nil, nil)
		if !errors.Is(err, ErrQuoteTokenMismatch) {
			t.Fatalf("expected ErrQuoteTokenMismatch, got %v", err)
		}
	})

	t.Run("cnpj not authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "99999999000199"}, nil)

		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "", nil, nil)
		if !errors.Is(err, ErrQuoteForbidden) {
			t.Fatalf("expected ErrQuoteForbidden, got %v", err)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := base()
		q.Status = entities.QuoteStatusSubmitted
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12345678000190"}, nil)

		// No Replace expectation: the record must not be touched.
		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "", map[string]float64{"it-1": 9}, nil)
		if !errors.Is(err, ErrQuoteAlreadySubmitted) {
			t.Fatalf("expected ErrQuoteAlreadySubmitted, got %v", err)
		}
	})

	t.Run("approved quote is closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := base()
		q.Status = entities.QuoteStatusApproved
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12345678000190"}, nil)

		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "", nil, nil)
		if !errors.Is(err, ErrQuoteNotOpen) {
			t.Fatalf("expected ErrQuoteNotOpen, got %v", err)
		}
	})

	t.Run("stores exactly the submitted payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		q := base()
		q.Prices = map[string]float64{"stale": 1}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12345678000190"}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, got entities.Quote, _ int64) (entities.Quote, error) {
				if got.Status != entities.QuoteStatusSubmitted {
					t.Fatalf("expected submitted status, got %s", got.Status)
				}
				if len(got.Prices) != 1 || got.Prices["it-1"] != 10.5 {
					t.Fatalf("expected submitted prices only, got %+v", got.Prices)
				}
				if len(got.Quantities) != 1 || got.Quantities["it-1"] != 3 {
					t.Fatalf("expected submitted quantities only, got %+v", got.Quantities)
				}
				return got, nil
			},
		)

		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12.345.678/0001-90", "Maria",
			map[string]float64{"it-1": 10.5}, map[string]float64{"it-1": 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil maps become empty maps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12345678000190"}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, got entities.Quote, _ int64) (entities.Quote, error) {
				if got.Prices == nil || got.Quantities == nil {
					t.Fatalf("expected empty maps, got nil")
				}
				return got, nil
			},
		)

		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrent submit loses on version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewQuoteUseCase(repo, suppliers)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplier{ID: "sup-1", CNPJ: "12345678000190"}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(2)).Return(entities.Quote{}, interfaces.ErrQuoteVersionConflict)

		_, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "", nil, nil)
		if !errors.Is(err, interfaces.ErrQuoteVersionConflict) {
			t.Fatalf("expected version conflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_RequestRevision(t *testing.T) {
	t.Run("clears submission and reopens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		q := entities.Quote{
			ID:         "q-1",
			Status:     entities.QuoteStatusSubmitted,
			Prices:     map[string]float64{"it-1": 10},
			Quantities: map[string]float64{"it-1": 2},
			Version:    4,
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, got entities.Quote, _ int64) (entities.Quote, error) {
				if got.Status != entities.QuoteStatusWaiting {
					t.Fatalf("expected waiting status, got %s", got.Status)
				}
				if len(got.Prices) != 0 || len(got.Quantities) != 0 {
					t.Fatalf("expected cleared prices/quantities, got %+v %+v", got.Prices, got.Quantities)
				}
				return got, nil
			},
		)

		res, err := uc.RequestRevision(context.Background(), "q-1", "valores desatualizados")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusWaiting {
			t.Fatalf("expected waiting, got %s", res.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.RequestRevision(context.Background(), "q-1", "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Approve(t *testing.T) {
	t.Run("approves from any status", func(t *testing.T) {
		for _, status := range []entities.QuoteStatus{
			entities.QuoteStatusDraft,
			entities.QuoteStatusWaiting,
			entities.QuoteStatusSubmitted,
			entities.QuoteStatusApproved,
		} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: status, Version: 1}, nil)
			repo.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
				func(_ context.Context, got entities.Quote, _ int64) (entities.Quote, error) {
					return got, nil
				},
			)

			res, err := uc.Approve(context.Background(), "q-1")
			if err != nil {
				t.Fatalf("status %s: unexpected error: %v", status, err)
			}
			if res.Status != entities.QuoteStatusApproved {
				t.Fatalf("status %s: expected approved, got %s", status, res.Status)
			}
			ctrl.Finish()
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Approve(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

// Full supplier round trip: login, submit, revision, resubmit, approve.
func TestQuoteUseCase_SupplierRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
	uc := NewQuoteUseCase(repo, suppliers)

	record := entities.Quote{
		ID:               "q-1",
		QuoteToken:       "tok-abc",
		Status:           entities.QuoteStatusWaiting,
		InvitedSuppliers: []entities.InvitedSupplier{{ID: "sup-1"}},
		Version:          1,
	}

	suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").
		Return(entities.Supplier{ID: "sup-1", CNPJ: "12.345.678/0001-90"}, nil).AnyTimes()
	repo.EXPECT().GetByToken(gomock.Any(), "tok-abc").
		DoAndReturn(func(context.Context, string) (entities.Quote, error) { return record, nil })
	repo.EXPECT().GetByID(gomock.Any(), "q-1").
		DoAndReturn(func(context.Context, string) (entities.Quote, error) { return record, nil }).AnyTimes()
	repo.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q entities.Quote, expected int64) (entities.Quote, error) {
			if expected != record.Version {
				return entities.Quote{}, interfaces.ErrQuoteVersionConflict
			}
			q.Version = expected + 1
			record = q
			return q, nil
		}).AnyTimes()

	if _, err := uc.SupplierLogin(context.Background(), "tok-abc", "12345678000190"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "Maria",
		map[string]float64{"it-1": 10}, map[string]float64{"it-1": 2}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if record.Status != entities.QuoteStatusSubmitted {
		t.Fatalf("expected submitted, got %s", record.Status)
	}

	if _, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "Maria",
		map[string]float64{"it-1": 11}, nil); !errors.Is(err, ErrQuoteAlreadySubmitted) {
		t.Fatalf("expected ErrQuoteAlreadySubmitted, got %v", err)
	}

	if _, err := uc.RequestRevision(context.Background(), "q-1", "revisar valores"); err != nil {
		t.Fatalf("revision: %v", err)
	}
	if record.Status != entities.QuoteStatusWaiting || len(record.Prices) != 0 {
		t.Fatalf("expected reopened empty quote, got %+v", record)
	}

	if _, err := uc.Submit(context.Background(), "q-1", "tok-abc", "12345678000190", "Maria",
		map[string]float64{"it-1": 12}, map[string]float64{"it-1": 2}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	if _, err := uc.Approve(context.Background(), "q-1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if record.Status != entities.QuoteStatusApproved {
		t.Fatalf("expected approved, got %s", record.Status)
	}
}
