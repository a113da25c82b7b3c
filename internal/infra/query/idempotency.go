package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClaimIdempotencyKeyParams struct {
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
	Now         pgtype.Timestamptz
	ExpiresAt   pgtype.Timestamptz
}

// An expired row is taken over as if it never existed.
const claimIdempotencyKey = `INSERT INTO idempotency_keys (key, endpoint, request_hash, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key, endpoint) DO UPDATE
SET request_hash = EXCLUDED.request_hash,
    result_id    = NULL,
    created_at   = EXCLUDED.created_at,
    expires_at   = EXCLUDED.expires_at
WHERE idempotency_keys.expires_at <= EXCLUDED.created_at`

// ClaimIdempotencyKey returns 1 when the caller now owns the key and 0 when a live row already holds it.
func (q *Queries) ClaimIdempotencyKey(ctx context.Context, db DBTX, arg ClaimIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimIdempotencyKey, arg.Key, arg.Endpoint, arg.RequestHash, arg.Now, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `SELECT key, endpoint, request_hash, result_id, created_at, expires_at
FROM idempotency_keys WHERE key = $1 AND endpoint = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID, endpoint string) (IdempotencyKeys, error) {
	return collectOne[IdempotencyKeys](ctx, db, getIdempotencyKey, key, endpoint)
}

const completeIdempotencyKey = `UPDATE idempotency_keys SET result_id = $3 WHERE key = $1 AND endpoint = $2`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID, endpoint string, resultID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, completeIdempotencyKey, key, endpoint, resultID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at <= $1`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
