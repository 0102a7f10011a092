package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rsubramani/policy-tracker/internal/entity"
)

// CustomerRepository resolves and creates policy holders.
// Find methods return (nil, nil) when no row matches.
type CustomerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByName(ctx context.Context, name string) (*entity.Customer, error)
	Create(ctx context.Context, name, extractionMethod string) (*entity.Customer, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}

// PolicyUpdate is the field-set a merge decided to write. Nil fields are
// left untouched; the merge semantics live in the reconciler, not here.
type PolicyUpdate struct {
	FUPDueDate       *time.Time
	PremiumAmount    *float64
	SumAssured       *float64
	AgentCode        *string
	PlanType         *string
	PlanName         *string
	PaymentMode      *string
	PolicyTerm       *int
	CommencementDate *time.Time
}

// Empty reports whether the update would write nothing.
func (u PolicyUpdate) Empty() bool {
	return u.FUPDueDate == nil && u.PremiumAmount == nil && u.SumAssured == nil &&
		u.AgentCode == nil && u.PlanType == nil && u.PlanName == nil &&
		u.PaymentMode == nil && u.PolicyTerm == nil && u.CommencementDate == nil
}

// PolicyRepository stores policies keyed by their external policy number.
type PolicyRepository interface {
	FindByNumber(ctx context.Context, policyNumber string) (*entity.Policy, error)
	Create(ctx context.Context, p *entity.Policy) (*entity.Policy, error)
	Update(ctx context.Context, id uuid.UUID, upd PolicyUpdate) (*entity.Policy, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
	List(ctx context.Context) ([]*entity.Policy, error)
}

// PremiumRecordRepository is the append-only premium history.
type PremiumRecordRepository interface {
	Append(ctx context.Context, rec *entity.PremiumRecord) (*entity.PremiumRecord, error)
	ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*entity.PremiumRecord, error)
}

// DocumentLogRepository is the duplicate detector's durable memory.
type DocumentLogRepository interface {
	Seen(ctx context.Context, key string) (bool, error)
	Append(ctx context.Context, e *entity.DocumentLog) error
}

// AgentRepository reads provisioned agents. Upsert exists for provisioning
// from config only; the engine never writes agents.
type AgentRepository interface {
	Get(ctx context.Context, code string) (*entity.Agent, error)
	Upsert(ctx context.Context, a entity.Agent) error
}

// Store bundles the repositories a document's processing touches.
type Store struct {
	Customers CustomerRepository
	Policies  PolicyRepository
	Premiums  PremiumRecordRepository
	Documents DocumentLogRepository
	Agents    AgentRepository
}

// TxStore runs work transactionally. A document's writes must be atomic:
// a partially written document must never be logged as processed.
type TxStore interface {
	Store() Store
	RunInTx(ctx context.Context, fn func(Store) error) error
}
