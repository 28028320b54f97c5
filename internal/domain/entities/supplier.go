package entities

// Supplier is a directory entry for a contracted supplier.
//
// Storage model (DynamoDB):
//   - PK: id (caller-assigned, usually derived from the CNPJ)
//
// The quotation workflow reads only ID and CNPJ; the remaining fields are
// contract metadata maintained through the CRUD surface.
type Supplier struct {
	ID                  string `json:"id"`
	SocialReason        string `json:"social_reason"`
	CNPJ                string `json:"cnpj"`
	ContractStart       string `json:"contract_start"`
	ContractEnd         string `json:"contract_end"`
	Project             string `json:"project"`
	HiringType          string `json:"hiring_type"`
	Headquarters        string `json:"headquarters"`
	LegalRepresentative string `json:"legal_representative"`
	RepresentativeEmail string `json:"representative_email"`
	Contact             string `json:"contact"`
	Witness             string `json:"witness"`
	WitnessEmail        string `json:"witness_email"`
	Observations        string `json:"observations"`
}
