package response

import (
	"testing"

	"cms_backend/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		ID:         "q-1",
		WorkID:     "w-1",
		LimitDate:  "31/12/2025",
		CreatedAt:  "01/10/2025 às 09:30:00",
		Status:     entities.QuoteStatusWaiting,
		QuoteToken: "tok-abc",
		InvitedSuppliers: []entities.InvitedSupplier{
			{ID: "sup-1", Name: "Fornecedora A"},
		},
		AllowQuantityChange: true,
		SelectedItems:       []string{"it-1"},
		Prices:              map[string]float64{"it-1": 10.5},
		Version:             3,
	}

	res := FromQuote(q)

	if res.ID != "q-1" || res.Status != "waiting" || res.Version != 3 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.InvitedSuppliers) != 1 || res.InvitedSuppliers[0].Name != "Fornecedora A" {
		t.Fatalf("unexpected invited suppliers: %+v", res.InvitedSuppliers)
	}
	if !res.AllowQuantityChange || res.Prices["it-1"] != 10.5 {
		t.Fatalf("unexpected flags or prices: %+v", res)
	}
}

func TestFromQuoteEmptyInvitees(t *testing.T) {
	res := FromQuote(entities.Quote{ID: "q-1"})
	if res.InvitedSuppliers == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(res.InvitedSuppliers) != 0 {
		t.Fatalf("expected no invitees, got %+v", res.InvitedSuppliers)
	}
}
