package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rsubramani/policy-tracker/gen/ent"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
	"github.com/rsubramani/policy-tracker/internal/entity"
)

type premiumRecordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPremiumRecordRepository(client *ent.Client, logger *slog.Logger) PremiumRecordRepository {
	return &premiumRecordRepository{client: client, logger: logger}
}

// Append inserts one observation. Premium history is never updated in
// place or deduplicated against itself.
func (r *premiumRecordRepository) Append(ctx context.Context, rec *entity.PremiumRecord) (*entity.PremiumRecord, error) {
	row, err := r.client.PremiumRecord.Create().
		SetPolicyID(rec.PolicyID).
		SetNillableDueDate(rec.DueDate).
		SetNillableAmount(rec.Amount).
		SetNillableTax(rec.Tax).
		SetNillableTotal(rec.Total).
		SetNillableDueCount(rec.DueCount).
		SetNillableAgentCode(rec.AgentCode).
		SetSourceDocument(rec.SourceDocument).
		SetNillablePaymentDate(rec.PaymentDate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append premium record", "policy_id", rec.PolicyID, "error", err)
		return nil, err
	}
	return toPremiumRecord(row), nil
}

func (r *premiumRecordRepository) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*entity.PremiumRecord, error) {
	rows, err := r.client.PremiumRecord.Query().
		Where(premiumrecord.PolicyID(policyID)).
		Order(premiumrecord.ByDueDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list premium records", "policy_id", policyID, "error", err)
		return nil, err
	}
	out := make([]*entity.PremiumRecord, len(rows))
	for i, row := range rows {
		out[i] = toPremiumRecord(row)
	}
	return out, nil
}

func toPremiumRecord(e *ent.PremiumRecord) *entity.PremiumRecord {
	return &entity.PremiumRecord{
		ID:             e.ID,
		PolicyID:       e.PolicyID,
		DueDate:        e.DueDate,
		Amount:         e.Amount,
		Tax:            e.Tax,
		Total:          e.Total,
		DueCount:       e.DueCount,
		AgentCode:      e.AgentCode,
		SourceDocument: e.SourceDocument,
		PaymentDate:    e.PaymentDate,
		ProcessedAt:    e.ProcessedAt,
	}
}
