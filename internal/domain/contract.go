package domain

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
	ContractStatusSuspended ContractStatus = "SUSPENDED"
)

type ContractType string

const (
	ContractTypeRental           ContractType = "RENTAL"
	ContractTypeCredit           ContractType = "CREDIT"
	ContractTypeRentalWithCredit ContractType = "RENTAL_WITH_CREDIT"
)

// Contract is the binding agreement created when an order is approved.
// Exactly one contract exists per rental order. Credit fields are set
// only for contract types that carry credit, and only banks may set them.
type Contract struct {
	ID              int32          `json:"id"`
	ContractNumber  string         `json:"contract_number"`
	RentalOrderID   int32          `json:"rental_order_id"`
	BankID          *int32         `json:"bank_id,omitempty"`
	SignatureDate   string         `json:"signature_date"`
	StartDate       *string        `json:"start_date,omitempty"`
	EndDate         *string        `json:"end_date,omitempty"`
	ValueCents      int64          `json:"value_cents"`
	CreditCents     *int64         `json:"credit_cents,omitempty"`
	InterestRatePct *float64       `json:"interest_rate_pct,omitempty"`
	Type            ContractType   `json:"type"`
	Status          ContractStatus `json:"status"`
	Terms           string         `json:"terms"`
	CreatedOn       string         `json:"created_on"`
	UpdatedOn       string         `json:"updated_on"`
}

// HasCredit reports whether the contract type carries credit terms.
func (c *Contract) HasCredit() bool {
	return c.Type == ContractTypeCredit || c.Type == ContractTypeRentalWithCredit
}

// IsActive reports whether the contract is currently in force.
func (c *Contract) IsActive() bool {
	return c.Status == ContractStatusActive
}
