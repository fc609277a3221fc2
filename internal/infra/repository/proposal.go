package repository

import (
	"context"

	"event-customize/internal/domain/proposal"
	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/infra/repository/converter"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProposalWriteQueries interface {
	CreateProposal(ctx context.Context, db query.DBTX, arg query.CreateProposalParams) error
	ExistsProposalForProvider(ctx context.Context, db query.DBTX, requestID, providerID uuid.UUID) (bool, error)
	ListProposalsByRequest(ctx context.Context, db query.DBTX, requestID uuid.UUID) ([]query.Proposal, error)
	UpdateProposalStatus(ctx context.Context, db query.DBTX, arg query.UpdateProposalStatusParams) (int64, error)
}

type ProposalRepository struct {
	queries ProposalWriteQueries
	db      query.DBTX
}

func NewProposalRepository(queries ProposalWriteQueries, db query.DBTX) *ProposalRepository {
	return &ProposalRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.ProposalRepository = (*ProposalRepository)(nil)

func (r *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	err := r.queries.CreateProposal(ctx, r.db, converter.ProposalToCreateParams(p))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create proposal", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return proposal.ErrDuplicateSubmission
		}
		return wrapped
	}
	return nil
}

func (r *ProposalRepository) ExistsForProvider(ctx context.Context, requestID, providerID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsProposalForProvider(ctx, r.db, requestID, providerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check provider proposal", err)
	}
	return exists, nil
}

func (r *ProposalRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*proposal.Proposal, error) {
	rows, err := r.queries.ListProposalsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposals", err)
	}
	out := make([]*proposal.Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ProposalFromRow(row))
	}
	return out, nil
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, p *proposal.Proposal) error {
	n, err := r.queries.UpdateProposalStatus(ctx, r.db, query.UpdateProposalStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update proposal status", err)
	}
	if n == 0 {
		return shared.ErrStaleStatus
	}
	return nil
}
