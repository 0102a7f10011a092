package repository

import (
	"context"
	"log/slog"

	"github.com/rsubramani/policy-tracker/gen/ent"
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
	"github.com/rsubramani/policy-tracker/internal/entity"
)

type documentLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentLogRepository(client *ent.Client, logger *slog.Logger) DocumentLogRepository {
	return &documentLogRepository{client: client, logger: logger}
}

func (r *documentLogRepository) Seen(ctx context.Context, key string) (bool, error) {
	exists, err := r.client.DocumentLog.Query().
		Where(documentlog.LookupKey(key)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check document log", "key", key, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *documentLogRepository) Append(ctx context.Context, e *entity.DocumentLog) error {
	err := r.client.DocumentLog.Create().
		SetLookupKey(e.LookupKey).
		SetFilename(e.Filename).
		SetDocumentType(e.DocumentType).
		SetNillableContentHash(e.ContentHash).
		SetNillableHashAlgo(e.HashAlgo).
		SetNillableHashPrefixLen(e.HashPrefixLen).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to append document log", "key", e.LookupKey, "error", err)
		return err
	}
	return nil
}
