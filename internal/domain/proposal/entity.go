package proposal

import (
	"time"

	"event-customize/internal/pkg/clock"

	"github.com/google/uuid"
)

type Proposal struct {
	id          uuid.UUID
	requestID   uuid.UUID
	provider    ProviderSnapshot
	documentRef DocumentRef
	status      Status
	position    int
	submittedAt time.Time
	updatedAt   time.Time
}

// NewProposal creates a pending proposal. position is the submission index within
// the request and only drives display order.
func NewProposal(clk clock.Clock, requestID uuid.UUID, provider ProviderSnapshot, documentRef DocumentRef, position int) (*Proposal, error) {
	if provider.ProviderID == uuid.Nil {
		return nil, ErrMissingProvider
	}
	if documentRef == "" {
		return nil, ErrEmptyDocumentRef
	}
	// Stored timestamps carry microseconds, the precision list cursors encode.
	now := clk.Now().Truncate(time.Microsecond)
	return &Proposal{
		id:          uuid.New(),
		requestID:   requestID,
		provider:    provider,
		documentRef: documentRef,
		status:      StatusPending,
		position:    position,
		submittedAt: now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, requestID uuid.UUID,
	provider ProviderSnapshot,
	documentRef DocumentRef,
	status Status,
	position int,
	submittedAt, updatedAt time.Time,
) *Proposal {
	return &Proposal{
		id:          id,
		requestID:   requestID,
		provider:    provider,
		documentRef: documentRef,
		status:      status,
		position:    position,
		submittedAt: submittedAt,
		updatedAt:   updatedAt,
	}
}

func (p *Proposal) IsPending() bool {
	return p.status == StatusPending
}

func (p *Proposal) ID() uuid.UUID              { return p.id }
func (p *Proposal) RequestID() uuid.UUID       { return p.requestID }
func (p *Proposal) Provider() ProviderSnapshot { return p.provider }
func (p *Proposal) ProviderID() uuid.UUID      { return p.provider.ProviderID }
func (p *Proposal) DocumentRef() DocumentRef   { return p.documentRef }
func (p *Proposal) Status() Status             { return p.status }
func (p *Proposal) Position() int              { return p.position }
func (p *Proposal) SubmittedAt() time.Time     { return p.submittedAt }
func (p *Proposal) UpdatedAt() time.Time       { return p.updatedAt }
