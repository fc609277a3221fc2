package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const proposalColumns = `
    p.id, p.request_id, p.provider_id, p.provider_name, p.provider_email, p.document_ref,
    p.status, p.position, p.submitted_at, p.updated_at`

func proposalDest(i *Proposal) []any {
	return []any{
		&i.ID, &i.RequestID, &i.ProviderID, &i.ProviderName, &i.ProviderEmail, &i.DocumentRef,
		&i.Status, &i.Position, &i.SubmittedAt, &i.UpdatedAt,
	}
}

const createProposal = `
INSERT INTO proposals (
    id, request_id, provider_id, provider_name, provider_email, document_ref,
    status, position, submitted_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateProposalParams struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	ProviderID    uuid.UUID
	ProviderName  string
	ProviderEmail string
	DocumentRef   string
	Status        string
	Position      int32
	SubmittedAt   pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateProposal(ctx context.Context, db DBTX, arg CreateProposalParams) error {
	_, err := db.Exec(ctx, createProposal,
		arg.ID, arg.RequestID, arg.ProviderID, arg.ProviderName, arg.ProviderEmail, arg.DocumentRef,
		arg.Status, arg.Position, arg.SubmittedAt, arg.UpdatedAt,
	)
	return err
}

const existsProposalForProvider = `
SELECT EXISTS (SELECT 1 FROM proposals WHERE request_id = $1 AND provider_id = $2)`

func (q *Queries) ExistsProposalForProvider(ctx context.Context, db DBTX, requestID, providerID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsProposalForProvider, requestID, providerID).Scan(&exists)
	return exists, err
}

const listProposalsByRequest = `SELECT` + proposalColumns + `
FROM proposals p
WHERE p.request_id = $1
ORDER BY p.position, p.submitted_at`

func (q *Queries) ListProposalsByRequest(ctx context.Context, db DBTX, requestID uuid.UUID) ([]Proposal, error) {
	rows, err := db.Query(ctx, listProposalsByRequest, requestID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Proposal, error) {
		var i Proposal
		err := row.Scan(proposalDest(&i)...)
		return i, err
	})
}

const updateProposalStatus = `
UPDATE proposals SET status = $2, updated_at = $3
WHERE id = $1 AND status = 'pending'`

type UpdateProposalStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

// UpdateProposalStatus only moves pending proposals; zero rows means it was already settled.
func (q *Queries) UpdateProposalStatus(ctx context.Context, db DBTX, arg UpdateProposalStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateProposalStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listProposalsByProvider = `SELECT` + proposalColumns + `, er.status, er.event_type
FROM proposals p
JOIN event_requests er ON er.id = p.request_id
WHERE p.provider_id = $1
ORDER BY p.submitted_at DESC, p.id DESC`

func (q *Queries) ListProposalsByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) ([]ProviderProposal, error) {
	rows, err := db.Query(ctx, listProposalsByProvider, providerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ProviderProposal, error) {
		var i ProviderProposal
		dest := append(proposalDest(&i.Proposal), &i.RequestStatus, &i.EventType)
		err := row.Scan(dest...)
		return i, err
	})
}
