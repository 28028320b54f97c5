package entities

// Address is the construction site address embedded in a Work.
type Address struct {
	Street       string `json:"street" dynamodbav:"street"`
	Neighborhood string `json:"neighborhood" dynamodbav:"neighborhood"`
	City         string `json:"city" dynamodbav:"city"`
	State        string `json:"state" dynamodbav:"state"`
	Number       string `json:"number" dynamodbav:"number"`
	Complement   string `json:"complement" dynamodbav:"complement"`
}

// Evaluation scores a resident engineer across the tracked dimensions.
type Evaluation struct {
	Technical     int `json:"technical" dynamodbav:"technical"`
	Management    int `json:"management" dynamodbav:"management"`
	Leadership    int `json:"leadership" dynamodbav:"leadership"`
	Organization  int `json:"organization" dynamodbav:"organization"`
	Commitment    int `json:"commitment" dynamodbav:"commitment"`
	Communication int `json:"communication" dynamodbav:"communication"`
}

// ResidentAssignment links a resident engineer to a work for a contract window.
type ResidentAssignment struct {
	ID            string      `json:"id" dynamodbav:"id"`
	Name          string      `json:"name" dynamodbav:"name"`
	ContractStart string      `json:"contract_start" dynamodbav:"contract_start"`
	ContractEnd   string      `json:"contract_end" dynamodbav:"contract_end"`
	Evaluation    *Evaluation `json:"evaluation,omitempty" dynamodbav:"evaluation,omitempty"`
}

// Work is a construction project. Quotes reference it through WorkID.
//
// Storage model (DynamoDB):
//   - PK: id (caller-assigned)
//
// The struct carries dynamodbav tags and is marshalled as-is; every field
// survives a round trip through the API unchanged.
type Work struct {
	ID            string               `json:"id" dynamodbav:"id"`
	Regional      string               `json:"regional" dynamodbav:"regional"`
	GoLiveDate    string               `json:"go_live_date" dynamodbav:"go_live_date"`
	CEP           string               `json:"cep" dynamodbav:"cep"`
	Address       Address              `json:"address" dynamodbav:"address"`
	WorkType      string               `json:"work_type" dynamodbav:"work_type"`
	CNPJ          string               `json:"cnpj" dynamodbav:"cnpj"`
	BusinessCase  string               `json:"business_case" dynamodbav:"business_case"`
	CapexApproved string               `json:"capex_approved" dynamodbav:"capex_approved"`
	InternalOrder string               `json:"internal_order" dynamodbav:"internal_order"`
	OI            string               `json:"oi,omitempty" dynamodbav:"oi,omitempty"`
	Residents     []ResidentAssignment `json:"residents" dynamodbav:"residents"`

	HasEngineering  bool `json:"has_engineering" dynamodbav:"has_engineering"`
	HasPlanning     bool `json:"has_planning" dynamodbav:"has_planning"`
	HasReport       bool `json:"has_report" dynamodbav:"has_report"`
	HasControlTower bool `json:"has_control_tower" dynamodbav:"has_control_tower"`
}
