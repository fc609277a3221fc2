package repository

import (
	"context"

	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

var errIdempotencyKeyNotClaimed = errs.New("idempotency key is not in processing state")

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db query.DBTX, arg query.ClaimIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db query.DBTX, key, userID uuid.UUID) (query.IdempotencyKey, error)
	CompleteIdempotencyKey(ctx context.Context, db query.DBTX, key, userID, resultRequestID uuid.UUID) (int64, error)
	ReleaseIdempotencyKey(ctx context.Context, db query.DBTX, key, userID uuid.UUID) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      query.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db query.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.IdempotencyRepository = (*IdempotencyRepository)(nil)

func (r *IdempotencyRepository) Claim(ctx context.Context, rec shared.IdempotencyRecord) (*shared.IdempotencyRecord, bool, error) {
	n, err := r.queries.ClaimIdempotencyKey(ctx, r.db, query.ClaimIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
	})
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	if n == 1 {
		return nil, true, nil
	}

	row, err := r.queries.GetIdempotencyKey(ctx, r.db, rec.Key, rec.UserID)
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		RequestHash:     row.RequestHash,
		Status:          row.Status,
		ResultRequestID: pgconv.UUIDPtrFromPgtype(row.ResultRequestID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, false, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, userID, requestID uuid.UUID) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, r.db, key, userID, requestID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("failed to complete idempotency key", errIdempotencyKeyNotClaimed, infra.KindConflict)
	}
	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, key, userID uuid.UUID) error {
	if err := r.queries.ReleaseIdempotencyKey(ctx, r.db, key, userID); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}
