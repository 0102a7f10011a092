package repository

import (
	"context"
	"log/slog"

	"github.com/rsubramani/policy-tracker/gen/ent"
	"github.com/rsubramani/policy-tracker/gen/ent/agent"
	"github.com/rsubramani/policy-tracker/internal/entity"
)

type agentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAgentRepository(client *ent.Client, logger *slog.Logger) AgentRepository {
	return &agentRepository{client: client, logger: logger}
}

func (r *agentRepository) Get(ctx context.Context, code string) (*entity.Agent, error) {
	row, err := r.client.Agent.Query().
		Where(agent.Code(code)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get agent", "code", code, "error", err)
		return nil, err
	}
	return &entity.Agent{
		Code:         row.Code,
		Name:         row.Name,
		BranchCode:   row.BranchCode,
		Relationship: row.Relationship,
		Phone:        row.Phone,
		Email:        row.Email,
		Active:       row.Active,
	}, nil
}

// Upsert provisions an agent row from config. Existing rows get their
// descriptive attributes refreshed.
func (r *agentRepository) Upsert(ctx context.Context, a entity.Agent) error {
	err := r.client.Agent.Create().
		SetCode(a.Code).
		SetName(a.Name).
		SetNillableBranchCode(a.BranchCode).
		SetNillableRelationship(a.Relationship).
		SetNillablePhone(a.Phone).
		SetNillableEmail(a.Email).
		SetActive(a.Active).
		OnConflictColumns(agent.FieldCode).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert agent", "code", a.Code, "error", err)
		return err
	}
	return nil
}
