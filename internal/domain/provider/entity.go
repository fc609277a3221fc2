package provider

import (
	"time"

	"event-customize/internal/domain/proposal"

	"github.com/google/uuid"
)

// Profile is a provider-status record: two independent tiers, each with its own expiry.
type Profile struct {
	AccountID        uuid.UUID
	Name             string
	Email            string
	IsPartner        bool
	PartnerExpiresAt *time.Time
	IsMember         bool
	MemberExpiresAt  *time.Time
}

func (p Profile) partnerActiveAt(now time.Time) bool {
	return p.IsPartner && p.PartnerExpiresAt != nil && p.PartnerExpiresAt.After(now)
}

func (p Profile) memberActiveAt(now time.Time) bool {
	return p.IsMember && p.MemberExpiresAt != nil && p.MemberExpiresAt.After(now)
}

// IsEligibleAt holds iff at least one tier is set and unexpired at now.
func (p Profile) IsEligibleAt(now time.Time) bool {
	return p.partnerActiveAt(now) || p.memberActiveAt(now)
}

func (p Profile) Snapshot() proposal.ProviderSnapshot {
	return proposal.ProviderSnapshot{
		ProviderID: p.AccountID,
		Name:       p.Name,
		Email:      p.Email,
	}
}
