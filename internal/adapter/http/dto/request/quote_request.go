package request

import (
	"strings"

	"cms_backend/internal/domain/entities"
)

// InvitedSupplierRequest mirrors entities.InvitedSupplier on the wire.
type InvitedSupplierRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

// QuoteRequest is the payload for quote create/update. The id is optional on
// create (the server assigns one) and must match the path id on update.
type QuoteRequest struct {
	ID                  string                   `json:"id"`
	WorkID              string                   `json:"work_id" binding:"required"`
	LimitDate           string                   `json:"limit_date" binding:"required"`
	CreatedAt           string                   `json:"created_at"`
	Status              string                   `json:"status"`
	QuoteToken          string                   `json:"quote_token"`
	InvitedSuppliers    []InvitedSupplierRequest `json:"invited_suppliers"`
	AllowQuantityChange bool                     `json:"allow_quantity_change"`
	AllowAddItems       bool                     `json:"allow_add_items"`
	AllowRemoveItems    bool                     `json:"allow_remove_items"`
	AllowLPUEdit        bool                     `json:"allow_lpu_edit"`
	SelectedItems       []string                 `json:"selected_items"`
	Prices              map[string]float64       `json:"prices"`
	Quantities          map[string]float64       `json:"quantities"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	invited := make([]entities.InvitedSupplier, 0, len(r.InvitedSuppliers))
	for _, inv := range r.InvitedSuppliers {
		invited = append(invited, entities.InvitedSupplier{ID: strings.TrimSpace(inv.ID), Name: inv.Name})
	}
	return entities.Quote{
		ID:                  r.ID,
		WorkID:              r.WorkID,
		LimitDate:           r.LimitDate,
		CreatedAt:           r.CreatedAt,
		Status:              entities.QuoteStatus(r.Status),
		QuoteToken:          r.QuoteToken,
		InvitedSuppliers:    invited,
		AllowQuantityChange: r.AllowQuantityChange,
		AllowAddItems:       r.AllowAddItems,
		AllowRemoveItems:    r.AllowRemoveItems,
		AllowLPUEdit:        r.AllowLPUEdit,
		SelectedItems:       r.SelectedItems,
		Prices:              r.Prices,
		Quantities:          r.Quantities,
	}
}

// SupplierLoginRequest carries the anonymous access credentials: the shared
// quote token plus the caller's CNPJ.
type SupplierLoginRequest struct {
	Token string `json:"token" binding:"required"`
	CNPJ  string `json:"cnpj" binding:"required"`
}

// SupplierSubmitRequest is the priced payload posted by an invited supplier.
type SupplierSubmitRequest struct {
	Token      string             `json:"token" binding:"required"`
	CNPJ       string             `json:"cnpj" binding:"required"`
	SignerName string             `json:"signer_name"`
	Prices     map[string]float64 `json:"prices"`
	Quantities map[string]float64 `json:"quantities"`
}

// RevisionRequest accompanies an internal user's request-revision action.
type RevisionRequest struct {
	Comment string `json:"comment"`
}

// ApproveRequest optionally names the revision being approved.
type ApproveRequest struct {
	RevisionNumber *int `json:"revision_number"`
}
