package query

import (
	"context"

	"github.com/google/uuid"
)

const getProviderProfile = `
SELECT account_id, name, email, is_partner, partner_expires_at, is_member, member_expires_at
FROM provider_profiles
WHERE account_id = $1`

func (q *Queries) GetProviderProfile(ctx context.Context, db DBTX, accountID uuid.UUID) (ProviderProfile, error) {
	var i ProviderProfile
	err := db.QueryRow(ctx, getProviderProfile, accountID).Scan(
		&i.AccountID, &i.Name, &i.Email, &i.IsPartner, &i.PartnerExpiresAt, &i.IsMember, &i.MemberExpiresAt,
	)
	return i, err
}

const upsertProviderProfile = `
INSERT INTO provider_profiles (account_id, name, email, is_partner, partner_expires_at, is_member, member_expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (account_id) DO UPDATE SET
    name = EXCLUDED.name,
    email = EXCLUDED.email,
    is_partner = EXCLUDED.is_partner,
    partner_expires_at = EXCLUDED.partner_expires_at,
    is_member = EXCLUDED.is_member,
    member_expires_at = EXCLUDED.member_expires_at,
    updated_at = now()`

func (q *Queries) UpsertProviderProfile(ctx context.Context, db DBTX, arg ProviderProfile) error {
	_, err := db.Exec(ctx, upsertProviderProfile,
		arg.AccountID, arg.Name, arg.Email, arg.IsPartner, arg.PartnerExpiresAt, arg.IsMember, arg.MemberExpiresAt,
	)
	return err
}
