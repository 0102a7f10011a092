package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rsubramani/policy-tracker/gen/ent"
)

// EntStore implements TxStore over an ent client.
type EntStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEntStore(client *ent.Client, logger *slog.Logger) *EntStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntStore{client: client, logger: logger}
}

func (s *EntStore) Store() Store {
	return storeFor(s.client, s.logger)
}

// RunInTx runs fn against a transactional view of the store. Rollback on
// error keeps a document's writes all-or-nothing.
func (s *EntStore) RunInTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(storeFor(tx.Client(), s.logger)); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.logger.Error("tx rollback failed", "error", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func storeFor(client *ent.Client, logger *slog.Logger) Store {
	return Store{
		Customers: NewCustomerRepository(client, logger),
		Policies:  NewPolicyRepository(client, logger),
		Premiums:  NewPremiumRecordRepository(client, logger),
		Documents: NewDocumentLogRepository(client, logger),
		Agents:    NewAgentRepository(client, logger),
	}
}
