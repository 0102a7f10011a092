package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rsubramani/policy-tracker/gen/ent"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/internal/entity"
)

type customerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(client *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepository{client: client, logger: logger}
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	row, err := r.client.Customer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get customer", "customer_id", id, "error", err)
		return nil, err
	}
	return toCustomer(row), nil
}

// FindByName resolves a customer by normalized name. Matching is
// case-insensitive; no fuzzy or phonetic matching happens here.
func (r *customerRepository) FindByName(ctx context.Context, name string) (*entity.Customer, error) {
	row, err := r.client.Customer.Query().
		Where(customer.NameEqualFold(name)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to find customer", "name", name, "error", err)
		return nil, err
	}
	return toCustomer(row), nil
}

func (r *customerRepository) Create(ctx context.Context, name, extractionMethod string) (*entity.Customer, error) {
	row, err := r.client.Customer.Create().
		SetName(name).
		SetExtractionMethod(extractionMethod).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer", "name", name, "error", err)
		return nil, err
	}
	return toCustomer(row), nil
}

func (r *customerRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.client.Customer.UpdateOneID(id).SetUpdatedAt(at).Exec(ctx)
}

func toCustomer(e *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:               e.ID,
		Name:             e.Name,
		Phone:            e.Phone,
		AltPhone:         e.AltPhone,
		Email:            e.Email,
		NationalID:       e.NationalID,
		DateOfBirth:      e.DateOfBirth,
		Address:          e.Address,
		Notes:            e.Notes,
		ExtractionMethod: e.ExtractionMethod,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
