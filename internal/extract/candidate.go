package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rsubramani/policy-tracker/constants"
)

// Candidate is a single extracted, validated entity record parsed from one
// line of document text. Optional fields are nil when the layout's grammar
// does not carry them.
type Candidate struct {
	Layout       constants.DocumentLayout
	PolicyNumber string
	Name         string // cleaned and title-cased

	PlanType         *string
	PolicyTerm       *int
	PaymentMode      *string
	CommencementDate *time.Time

	// premium observation fields
	FUPDueDate    *time.Time
	PremiumAmount *decimal.Decimal
	DueCount      *int
	Tax           *decimal.Decimal
	Total         *decimal.Decimal
	Commission    *decimal.Decimal

	// claims fields
	ClaimType   *string
	DueDate     *time.Time
	ClaimAmount *decimal.Decimal

	SumAssured *decimal.Decimal

	// document-level agent detection, applied by the pipeline
	AgentCode *string

	// true when the row carries due-date/amount observation fields that
	// must be appended to the premium history
	HasPremiumObservation bool

	SourceLine int
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
