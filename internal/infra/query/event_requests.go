package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const eventRequestColumns = `
    er.id, er.owner_id, er.event_type, er.other_label, er.guest_count, er.budget, er.activities,
    er.special_requests, er.status, er.charge, er.payment_status, er.admin_note,
    er.processed_by, er.processed_at, er.created_at, er.updated_at`

func scanEventRequest(row pgx.Row, extra ...any) (EventRequest, error) {
	var i EventRequest
	dest := []any{
		&i.ID, &i.OwnerID, &i.EventType, &i.OtherLabel, &i.GuestCount, &i.Budget, &i.Activities,
		&i.SpecialRequests, &i.Status, &i.Charge, &i.PaymentStatus, &i.AdminNote,
		&i.ProcessedBy, &i.ProcessedAt, &i.CreatedAt, &i.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return i, err
}

const createEventRequest = `
INSERT INTO event_requests (
    id, owner_id, event_type, other_label, guest_count, budget, activities,
    special_requests, status, charge, payment_status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

type CreateEventRequestParams struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	EventType       string
	OtherLabel      string
	GuestCount      int32
	Budget          string
	Activities      []string
	SpecialRequests string
	Status          string
	Charge          int64
	PaymentStatus   string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateEventRequest(ctx context.Context, db DBTX, arg CreateEventRequestParams) error {
	_, err := db.Exec(ctx, createEventRequest,
		arg.ID, arg.OwnerID, arg.EventType, arg.OtherLabel, arg.GuestCount, arg.Budget, arg.Activities,
		arg.SpecialRequests, arg.Status, arg.Charge, arg.PaymentStatus, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const lockEventRequest = `SELECT` + eventRequestColumns + `
FROM event_requests er
WHERE er.id = $1
FOR UPDATE`

// LockEventRequest takes the row lock that serializes every write to one request.
func (q *Queries) LockEventRequest(ctx context.Context, db DBTX, id uuid.UUID) (EventRequest, error) {
	return scanEventRequest(db.QueryRow(ctx, lockEventRequest, id))
}

const listProposalIDsByRequest = `
SELECT id FROM proposals WHERE request_id = $1 ORDER BY position, submitted_at`

func (q *Queries) ListProposalIDsByRequest(ctx context.Context, db DBTX, requestID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listProposalIDsByRequest, requestID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const updateEventRequestStatus = `
UPDATE event_requests
SET status = $3, admin_note = $4, processed_by = $5, processed_at = $6, updated_at = $7
WHERE id = $1 AND status = $2`

type UpdateEventRequestStatusParams struct {
	ID             uuid.UUID
	ExpectedStatus string
	Status         string
	AdminNote      string
	ProcessedBy    pgtype.UUID
	ProcessedAt    pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

// UpdateEventRequestStatus is a compare-and-swap on status; zero rows means the guard lost.
func (q *Queries) UpdateEventRequestStatus(ctx context.Context, db DBTX, arg UpdateEventRequestStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateEventRequestStatus,
		arg.ID, arg.ExpectedStatus, arg.Status, arg.AdminNote, arg.ProcessedBy, arg.ProcessedAt, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const proposalCountColumn = `,
    (SELECT count(*) FROM proposals p WHERE p.request_id = er.id) AS proposal_count`

const getEventRequestWithCount = `SELECT` + eventRequestColumns + proposalCountColumn + `
FROM event_requests er
WHERE er.id = $1`

func (q *Queries) GetEventRequestWithCount(ctx context.Context, db DBTX, id uuid.UUID) (EventRequestWithCount, error) {
	var count int64
	i, err := scanEventRequest(db.QueryRow(ctx, getEventRequestWithCount, id), &count)
	return EventRequestWithCount{EventRequest: i, ProposalCount: count}, err
}

const listEventRequestsByOwner = `SELECT` + eventRequestColumns + proposalCountColumn + `
FROM event_requests er
WHERE er.owner_id = $1
  AND ($2::text IS NULL OR er.status = $2::text)
  AND ($3::timestamptz IS NULL OR (er.created_at, er.id) < ($3::timestamptz, $4::uuid))
ORDER BY er.created_at DESC, er.id DESC
LIMIT $5`

type ListEventRequestsByOwnerParams struct {
	OwnerID        uuid.UUID
	Status         pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListEventRequestsByOwner(ctx context.Context, db DBTX, arg ListEventRequestsByOwnerParams) ([]EventRequestWithCount, error) {
	rows, err := db.Query(ctx, listEventRequestsByOwner, arg.OwnerID, arg.Status, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []EventRequestWithCount
	for rows.Next() {
		var count int64
		i, err := scanEventRequest(rows, &count)
		if err != nil {
			return nil, err
		}
		items = append(items, EventRequestWithCount{EventRequest: i, ProposalCount: count})
	}
	return items, rows.Err()
}

const listOpenEventRequests = `
SELECT er.id, er.event_type, er.other_label, er.guest_count, er.budget, er.activities, er.special_requests,
    (SELECT count(*) FROM proposals p WHERE p.request_id = er.id) AS proposal_count,
    EXISTS (SELECT 1 FROM proposals p WHERE p.request_id = er.id AND p.provider_id = $1) AS has_proposed,
    er.created_at
FROM event_requests er
WHERE er.status = 'show-partners-members'
ORDER BY er.created_at, er.id`

func (q *Queries) ListOpenEventRequests(ctx context.Context, db DBTX, viewerID uuid.UUID) ([]OpenEventRequest, error) {
	rows, err := db.Query(ctx, listOpenEventRequests, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OpenEventRequest
	for rows.Next() {
		var i OpenEventRequest
		if err := rows.Scan(
			&i.ID, &i.EventType, &i.OtherLabel, &i.GuestCount, &i.Budget, &i.Activities, &i.SpecialRequests,
			&i.ProposalCount, &i.HasProposed, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
