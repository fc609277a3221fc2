//go:build unit || e2e || property

package builder

import (
	"time"

	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProposalBuilder struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	ProviderID  uuid.UUID
	Name        string
	Email       string
	DocumentRef string
	Status      proposal.Status
	Position    int
	SubmittedAt time.Time
}

func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{
		ID:          uuid.New(),
		RequestID:   uuid.New(),
		ProviderID:  uuid.New(),
		Name:        "Harbor Events",
		Email:       "hello@harbor.example",
		DocumentRef: "https://docs.example/proposals/harbor.pdf",
		Status:      proposal.StatusPending,
		Position:    1,
		SubmittedAt: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ProposalBuilder) With(mutate func(*ProposalBuilder)) *ProposalBuilder {
	mutate(b)
	return b
}

func (b *ProposalBuilder) BuildDomain() *proposal.Proposal {
	return proposal.Reconstruct(
		b.ID, b.RequestID,
		proposal.ProviderSnapshot{ProviderID: b.ProviderID, Name: b.Name, Email: b.Email},
		proposal.DocumentRef(b.DocumentRef),
		b.Status,
		b.Position,
		b.SubmittedAt, b.SubmittedAt,
	)
}

func (b *ProposalBuilder) BuildRow() query.Proposal {
	return query.Proposal{
		ID:            b.ID,
		RequestID:     b.RequestID,
		ProviderID:    b.ProviderID,
		ProviderName:  b.Name,
		ProviderEmail: b.Email,
		DocumentRef:   b.DocumentRef,
		Status:        b.Status.String(),
		Position:      int32(b.Position),
		SubmittedAt:   pgconv.TimeToPgtype(b.SubmittedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.SubmittedAt),
	}
}

type ProfileBuilder struct {
	profile provider.Profile
}

// NewProfileBuilder starts from a provider with no active tier.
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{profile: provider.Profile{
		AccountID: uuid.New(),
		Name:      "Harbor Events",
		Email:     "hello@harbor.example",
	}}
}

func (b *ProfileBuilder) WithAccount(id uuid.UUID) *ProfileBuilder {
	b.profile.AccountID = id
	return b
}

func (b *ProfileBuilder) PartnerUntil(t time.Time) *ProfileBuilder {
	b.profile.IsPartner = true
	b.profile.PartnerExpiresAt = &t
	return b
}

func (b *ProfileBuilder) MemberUntil(t time.Time) *ProfileBuilder {
	b.profile.IsMember = true
	b.profile.MemberExpiresAt = &t
	return b
}

func (b *ProfileBuilder) Build() provider.Profile {
	return b.profile
}
