package entity

import (
	"time"

	"github.com/google/uuid"
)

// Policy represents one insurance policy. PolicyNumber is the stable external
// identifier; a policy always references exactly one customer.
type Policy struct {
	ID                uuid.UUID  `json:"id"`
	PolicyNumber      string     `json:"policy_number"`
	CustomerID        uuid.UUID  `json:"customer_id"`
	AgentCode         *string    `json:"agent_code,omitempty"`
	PlanType          *string    `json:"plan_type,omitempty"`
	PlanName          *string    `json:"plan_name,omitempty"`
	CommencementDate  *time.Time `json:"commencement_date,omitempty"`
	PaymentMode       *string    `json:"payment_mode,omitempty"`
	FUPDueDate        *time.Time `json:"fup_due_date,omitempty"`
	SumAssured        *float64   `json:"sum_assured,omitempty"`
	PremiumAmount     *float64   `json:"premium_amount,omitempty"`
	PolicyTerm        *int       `json:"policy_term,omitempty"`
	PremiumPayingTerm *int       `json:"premium_paying_term,omitempty"`
	Status            string     `json:"status"`
	ExtractionMethod  string     `json:"extraction_method"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
