package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimIdempotencyKey = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE SET
    endpoint = EXCLUDED.endpoint,
    request_hash = EXCLUDED.request_hash,
    status = 'processing',
    result_request_id = NULL,
    expires_at = EXCLUDED.expires_at,
    updated_at = now()
WHERE idempotency_keys.expires_at <= now()`

type ClaimIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

// ClaimIdempotencyKey inserts the key, or takes over an expired one. Zero rows
// means a live record already owns the key.
func (q *Queries) ClaimIdempotencyKey(ctx context.Context, db DBTX, arg ClaimIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, user_id, endpoint, request_hash, status, result_request_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (IdempotencyKey, error) {
	var i IdempotencyKey
	err := db.QueryRow(ctx, getIdempotencyKey, key, userID).Scan(
		&i.Key, &i.UserID, &i.Endpoint, &i.RequestHash, &i.Status, &i.ResultRequestID, &i.ExpiresAt,
	)
	return i, err
}

const completeIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'completed', result_request_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, key, userID, resultRequestID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, completeIdempotencyKey, key, userID, resultRequestID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseIdempotencyKey = `
DELETE FROM idempotency_keys
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

func (q *Queries) ReleaseIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) error {
	_, err := db.Exec(ctx, releaseIdempotencyKey, key, userID)
	return err
}
