package readstore

import (
	"context"

	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProposalViewQueries interface {
	ListProposalsByRequest(ctx context.Context, db query.DBTX, requestID uuid.UUID) ([]query.Proposal, error)
	ListProposalsByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) ([]query.ProviderProposal, error)
}

type ProposalReadStore struct {
	queries ProposalViewQueries
	db      query.DBTX
}

func NewProposalReadStore(queries ProposalViewQueries, db query.DBTX) *ProposalReadStore {
	return &ProposalReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.ProposalReadStore = (*ProposalReadStore)(nil)

func (r *ProposalReadStore) FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.ProposalView, error) {
	rows, err := r.queries.ListProposalsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposals by request", err)
	}
	out := make([]*queries.ProposalView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProposalView(row))
	}
	return out, nil
}

func (r *ProposalReadStore) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.MyProposalView, error) {
	rows, err := r.queries.ListProposalsByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposals by provider", err)
	}
	out := make([]*queries.MyProposalView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.MyProposalView{
			ProposalView:  *toProposalView(row.Proposal),
			RequestStatus: row.RequestStatus,
			EventType:     row.EventType,
		})
	}
	return out, nil
}

func toProposalView(row query.Proposal) *queries.ProposalView {
	return &queries.ProposalView{
		ID:            row.ID,
		RequestID:     row.RequestID,
		ProviderID:    row.ProviderID,
		ProviderName:  row.ProviderName,
		ProviderEmail: row.ProviderEmail,
		DocumentRef:   row.DocumentRef,
		Status:        row.Status,
		Position:      int(row.Position),
		SubmittedAt:   pgconv.TimeFromPgtype(row.SubmittedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
