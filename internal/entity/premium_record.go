package entity

import (
	"time"

	"github.com/google/uuid"
)

// PremiumRecord is one observation of a due/paid premium for a policy.
// Append-only; the reconciler consults this history but never rewrites it.
type PremiumRecord struct {
	ID             uuid.UUID  `json:"id"`
	PolicyID       uuid.UUID  `json:"policy_id"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	Tax            *float64   `json:"tax,omitempty"`
	Total          *float64   `json:"total,omitempty"`
	DueCount       *int       `json:"due_count,omitempty"`
	AgentCode      *string    `json:"agent_code,omitempty"`
	SourceDocument string     `json:"source_document"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	ProcessedAt    time.Time  `json:"processed_at"`
}
