package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsubramani/policy-tracker/gen/ent"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

// DatabaseResult bundles the opened client with its cleanup.
type DatabaseResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for SQLite
	Cleanup func()
}

// InitDatabase opens Postgres from config, or an in-process SQLite database
// when inmem is set or no DSN is configured.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DatabaseResult, error) {
	if inmem || cfg.Database.DSN == "" {
		client, err := repository.OpenSQLite(ctx, ":memory:", logger)
		if err != nil {
			return nil, err
		}
		return &DatabaseResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DatabaseResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(client, pool, logger)
		},
	}, nil
}
