package entities

// QuoteStatus represents the lifecycle of a supplier quotation (LPU).
//
// Domain notes:
//   - draft and waiting are both "open for supplier input"; the two literals
//     are kept distinct because the frontend renders them differently.
//   - submitted means an invited supplier has posted prices/quantities.
//   - approved is terminal except for an explicit revision request.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusWaiting   QuoteStatus = "waiting"
	QuoteStatusSubmitted QuoteStatus = "submitted"
	QuoteStatusApproved  QuoteStatus = "approved"
)

// ValidQuoteStatus reports whether s is one of the four lifecycle literals.
// No other value is ever written to storage.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusWaiting, QuoteStatusSubmitted, QuoteStatusApproved:
		return true
	}
	return false
}

// InvitedSupplier references a supplier directory entry allowed to view and
// submit against a quote. Only ID matters for authorization; Name is display.
type InvitedSupplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Quote is the LPU price-request document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_token-index): quote_token
//
// Access model:
//   - Internal users manage the record through the authenticated routes.
//   - Invited suppliers authenticate anonymously with QuoteToken + their CNPJ;
//     the token is the sole credential and is never rewritten once set.
//
// Concurrency:
//   - Version increases by one on every replace. Writers supply the version
//     they read and lose with a conflict instead of silently overwriting.
type Quote struct {
	ID        string      `json:"id"`
	WorkID    string      `json:"work_id"`
	LimitDate string      `json:"limit_date"`
	CreatedAt string      `json:"created_at,omitempty"`
	Status    QuoteStatus `json:"status"`

	QuoteToken       string            `json:"quote_token,omitempty"`
	InvitedSuppliers []InvitedSupplier `json:"invited_suppliers,omitempty"`

	// Presentation-layer permission flags. The server stores and returns them
	// but does not enforce them on submission.
	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`

	SelectedItems []string `json:"selected_items,omitempty"`

	// Populated only by a successful supplier submission, cleared on revision.
	Prices     map[string]float64 `json:"prices,omitempty"`
	Quantities map[string]float64 `json:"quantities,omitempty"`

	Version int64 `json:"version"`
}

// Open reports whether the quote still accepts supplier submissions.
func (q Quote) Open() bool {
	return q.Status == QuoteStatusDraft || q.Status == QuoteStatusWaiting
}
