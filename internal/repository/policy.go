package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rsubramani/policy-tracker/gen/ent"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/internal/entity"
)

type policyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPolicyRepository(client *ent.Client, logger *slog.Logger) PolicyRepository {
	return &policyRepository{client: client, logger: logger}
}

func (r *policyRepository) FindByNumber(ctx context.Context, policyNumber string) (*entity.Policy, error) {
	row, err := r.client.InsurancePolicy.Query().
		Where(insurancepolicy.PolicyNumber(policyNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to find policy", "policy_number", policyNumber, "error", err)
		return nil, err
	}
	return toPolicy(row), nil
}

func (r *policyRepository) Create(ctx context.Context, p *entity.Policy) (*entity.Policy, error) {
	builder := r.client.InsurancePolicy.Create().
		SetPolicyNumber(p.PolicyNumber).
		SetCustomerID(p.CustomerID).
		SetNillableAgentCode(p.AgentCode).
		SetNillablePlanType(p.PlanType).
		SetNillablePlanName(p.PlanName).
		SetNillableCommencementDate(p.CommencementDate).
		SetNillablePaymentMode(p.PaymentMode).
		SetNillableFupDueDate(p.FUPDueDate).
		SetNillableSumAssured(p.SumAssured).
		SetNillablePremiumAmount(p.PremiumAmount).
		SetNillablePolicyTerm(p.PolicyTerm).
		SetNillablePremiumPayingTerm(p.PremiumPayingTerm).
		SetExtractionMethod(p.ExtractionMethod)
	if p.Status != "" {
		builder = builder.SetStatus(p.Status)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create policy", "policy_number", p.PolicyNumber, "error", err)
		return nil, err
	}
	return toPolicy(row), nil
}

// Update writes only the fields the merge decided on; merge semantics are
// the caller's responsibility.
func (r *policyRepository) Update(ctx context.Context, id uuid.UUID, upd PolicyUpdate) (*entity.Policy, error) {
	row, err := r.client.InsurancePolicy.UpdateOneID(id).
		SetNillableFupDueDate(upd.FUPDueDate).
		SetNillablePremiumAmount(upd.PremiumAmount).
		SetNillableSumAssured(upd.SumAssured).
		SetNillableAgentCode(upd.AgentCode).
		SetNillablePlanType(upd.PlanType).
		SetNillablePlanName(upd.PlanName).
		SetNillablePaymentMode(upd.PaymentMode).
		SetNillablePolicyTerm(upd.PolicyTerm).
		SetNillableCommencementDate(upd.CommencementDate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update policy", "policy_id", id, "error", err)
		return nil, err
	}
	return toPolicy(row), nil
}

func (r *policyRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	return r.client.InsurancePolicy.Query().
		Where(insurancepolicy.CustomerID(customerID)).
		Count(ctx)
}

func (r *policyRepository) List(ctx context.Context) ([]*entity.Policy, error) {
	rows, err := r.client.InsurancePolicy.Query().
		Order(insurancepolicy.ByPolicyNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list policies", "error", err)
		return nil, err
	}
	out := make([]*entity.Policy, len(rows))
	for i, row := range rows {
		out[i] = toPolicy(row)
	}
	return out, nil
}

func toPolicy(e *ent.InsurancePolicy) *entity.Policy {
	return &entity.Policy{
		ID:                e.ID,
		PolicyNumber:      e.PolicyNumber,
		CustomerID:        e.CustomerID,
		AgentCode:         e.AgentCode,
		PlanType:          e.PlanType,
		PlanName:          e.PlanName,
		CommencementDate:  e.CommencementDate,
		PaymentMode:       e.PaymentMode,
		FUPDueDate:        e.FupDueDate,
		SumAssured:        e.SumAssured,
		PremiumAmount:     e.PremiumAmount,
		PolicyTerm:        e.PolicyTerm,
		PremiumPayingTerm: e.PremiumPayingTerm,
		Status:            e.Status,
		ExtractionMethod:  e.ExtractionMethod,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
