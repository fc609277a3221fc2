//go:build unit || property

package proposal_test

import (
	"event-customize/internal/domain/proposal"
	"event-customize/internal/testutil/builder"

	"github.com/google/uuid"
)

func proposalsFor(requestID uuid.UUID, statuses ...proposal.Status) []*proposal.Proposal {
	out := make([]*proposal.Proposal, 0, len(statuses))
	for i, st := range statuses {
		out = append(out, builder.NewProposalBuilder().With(func(b *builder.ProposalBuilder) {
			b.RequestID = requestID
			b.Status = st
			b.Position = i + 1
		}).BuildDomain())
	}
	return out
}
