package queries

//go:generate mockgen -source=proposal.go -destination=../../mock/queries/proposal.go -package=queriesmock

import (
	"context"

	"event-customize/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProposalsAccess = errs.Mark(errs.New("only the request owner may list its proposals"), errs.ErrForbidden)

type ProposalReadStore interface {
	// FindByRequest lists in submission order.
	FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*ProposalView, error)
	// FindByProvider lists newest first.
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*MyProposalView, error)
}

type ProposalQueries interface {
	Proposals(ctx context.Context, requestID, actorID uuid.UUID) ([]*ProposalView, error)
	MyProposals(ctx context.Context, providerID uuid.UUID) ([]*MyProposalView, error)
}

type proposalQueriesImpl struct {
	requests  EventRequestReadStore
	proposals ProposalReadStore
}

func NewProposalQueries(requests EventRequestReadStore, proposals ProposalReadStore) ProposalQueries {
	return &proposalQueriesImpl{requests: requests, proposals: proposals}
}

func (q *proposalQueriesImpl) Proposals(ctx context.Context, requestID, actorID uuid.UUID) ([]*ProposalView, error) {
	req, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != actorID {
		return nil, ErrProposalsAccess
	}
	return q.proposals.FindByRequest(ctx, requestID)
}

func (q *proposalQueriesImpl) MyProposals(ctx context.Context, providerID uuid.UUID) ([]*MyProposalView, error) {
	return q.proposals.FindByProvider(ctx, providerID)
}
