package proposal

import (
	"time"

	"github.com/google/uuid"
)

// Settlement is the outcome of accepting one proposal: one winner and every
// proposal that was still pending alongside it.
type Settlement struct {
	Accepted *Proposal
	Rejected []*Proposal
}

// Settle applies the accept-one-reject-rest rule to the full proposal set of a
// single request. It mutates the proposals in place; nothing is changed when an
// error is returned.
func Settle(proposals []*Proposal, targetID uuid.UUID, now time.Time) (*Settlement, error) {
	var target *Proposal
	for _, p := range proposals {
		if p.status == StatusAccepted {
			return nil, ErrAlreadySettled
		}
		if p.id == targetID {
			target = p
		}
	}
	if target == nil {
		return nil, ErrProposalNotFound
	}
	if !target.IsPending() {
		return nil, ErrProposalNotPending
	}

	settlement := &Settlement{Accepted: target}
	target.status = StatusAccepted
	target.updatedAt = now
	for _, p := range proposals {
		if p == target || !p.IsPending() {
			continue
		}
		p.status = StatusRejected
		p.updatedAt = now
		settlement.Rejected = append(settlement.Rejected, p)
	}
	return settlement, nil
}

// RejectPending rejects every pending proposal, used when a request is closed
// without an accepted proposal.
func RejectPending(proposals []*Proposal, now time.Time) []*Proposal {
	var rejected []*Proposal
	for _, p := range proposals {
		if !p.IsPending() {
			continue
		}
		p.status = StatusRejected
		p.updatedAt = now
		rejected = append(rejected, p)
	}
	return rejected
}
