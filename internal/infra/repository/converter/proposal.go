package converter

import (
	"event-customize/internal/domain/proposal"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"
)

func ProposalToCreateParams(p *proposal.Proposal) query.CreateProposalParams {
	provider := p.Provider()
	return query.CreateProposalParams{
		ID:            p.ID(),
		RequestID:     p.RequestID(),
		ProviderID:    provider.ProviderID,
		ProviderName:  provider.Name,
		ProviderEmail: provider.Email,
		DocumentRef:   p.DocumentRef().String(),
		Status:        p.Status().String(),
		Position:      int32(p.Position()), // #nosec G115 -- positions are bounded by proposal count
		SubmittedAt:   pgconv.TimeToPgtype(p.SubmittedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProposalFromRow(row query.Proposal) *proposal.Proposal {
	return proposal.Reconstruct(
		row.ID, row.RequestID,
		proposal.ProviderSnapshot{
			ProviderID: row.ProviderID,
			Name:       row.ProviderName,
			Email:      row.ProviderEmail,
		},
		proposal.DocumentRef(row.DocumentRef),
		proposal.Status(row.Status),
		int(row.Position),
		pgconv.TimeFromPgtype(row.SubmittedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
