package response

import "cms_backend/internal/domain/entities"

type InvitedSupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuoteResponse is the full quote record as returned to internal users and to
// suppliers that passed the access gate.
type QuoteResponse struct {
	ID                  string                    `json:"id"`
	WorkID              string                    `json:"work_id"`
	LimitDate           string                    `json:"limit_date"`
	CreatedAt           string                    `json:"created_at,omitempty"`
	Status              string                    `json:"status"`
	QuoteToken          string                    `json:"quote_token,omitempty"`
	InvitedSuppliers    []InvitedSupplierResponse `json:"invited_suppliers"`
	AllowQuantityChange bool                      `json:"allow_quantity_change"`
	AllowAddItems       bool                      `json:"allow_add_items"`
	AllowRemoveItems    bool                      `json:"allow_remove_items"`
	AllowLPUEdit        bool                      `json:"allow_lpu_edit"`
	SelectedItems       []string                  `json:"selected_items,omitempty"`
	Prices              map[string]float64        `json:"prices,omitempty"`
	Quantities          map[string]float64        `json:"quantities,omitempty"`
	Version             int64                     `json:"version"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	invited := make([]InvitedSupplierResponse, 0, len(q.InvitedSuppliers))
	for _, inv := range q.InvitedSuppliers {
		invited = append(invited, InvitedSupplierResponse{ID: inv.ID, Name: inv.Name})
	}
	return QuoteResponse{
		ID:                  q.ID,
		WorkID:              q.WorkID,
		LimitDate:           q.LimitDate,
		CreatedAt:           q.CreatedAt,
		Status:              string(q.Status),
		QuoteToken:          q.QuoteToken,
		InvitedSuppliers:    invited,
		AllowQuantityChange: q.AllowQuantityChange,
		AllowAddItems:       q.AllowAddItems,
		AllowRemoveItems:    q.AllowRemoveItems,
		AllowLPUEdit:        q.AllowLPUEdit,
		SelectedItems:       q.SelectedItems,
		Prices:              q.Prices,
		Quantities:          q.Quantities,
		Version:             q.Version,
	}
}

// MessageResponse is the confirmation body for state actions (submit,
// revision, approve).
type MessageResponse struct {
	Message string `json:"message"`
}
