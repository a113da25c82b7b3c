package repository

import (
	"context"
	"time"

	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db query.DBTX, arg query.ClaimIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint string) (query.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint string, resultID uuid.UUID) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) Claim(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error) {
	n, err := r.queries.ClaimIdempotencyKey(ctx, db, query.ClaimIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		Now:         pgconv.TimeToPgtype(now),
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Find(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint string) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, db, key, endpoint)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:         row.Key,
		Endpoint:    row.Endpoint,
		RequestHash: row.RequestHash,
		ResultID:    pgconv.UUIDPtrFromPgtype(row.ResultID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint string, resultID uuid.UUID) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, db, key, endpoint, resultID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
