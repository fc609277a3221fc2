package readstore

import (
	"context"

	"event-customize/internal/domain/provider"
	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProviderProfileQueries interface {
	GetProviderProfile(ctx context.Context, db query.DBTX, accountID uuid.UUID) (query.ProviderProfile, error)
}

// ProviderProfileReader reads through db: the pool on read paths, the open
// transaction when a write path checks eligibility under its lock.
type ProviderProfileReader struct {
	queries ProviderProfileQueries
	db      query.DBTX
}

func NewProviderProfileReader(queries ProviderProfileQueries, db query.DBTX) *ProviderProfileReader {
	return &ProviderProfileReader{
		queries: queries,
		db:      db,
	}
}

var _ provider.ProfileReader = (*ProviderProfileReader)(nil)

func (r *ProviderProfileReader) FindProfile(ctx context.Context, accountID uuid.UUID) (*provider.Profile, error) {
	row, err := r.queries.GetProviderProfile(ctx, r.db, accountID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, provider.ErrProfileNotFound
		}
		return nil, infra.WrapRepoErr("failed to get provider profile", err)
	}
	return &provider.Profile{
		AccountID:        row.AccountID,
		Name:             row.Name,
		Email:            row.Email,
		IsPartner:        row.IsPartner,
		PartnerExpiresAt: pgconv.TimePtrFromPgtype(row.PartnerExpiresAt),
		IsMember:         row.IsMember,
		MemberExpiresAt:  pgconv.TimePtrFromPgtype(row.MemberExpiresAt),
	}, nil
}
