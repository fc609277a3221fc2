package queries

//go:generate mockgen -source=event_request.go -destination=../../mock/queries/event_request.go -package=queriesmock

import (
	"context"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestAccess = errs.Mark(errs.New("event request is not visible to this account"), errs.ErrForbidden)
	ErrInvalidCursor = errs.Mark(errs.New("invalid pagination cursor"), errs.ErrValidation)
)

type EventRequestReadStore interface {
	// FindByID returns eventrequest.ErrRequestNotFound when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*EventRequestView, error)
	// FindByOwner lists newest first. after is exclusive; a nil after starts at the newest request.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, status *eventrequest.Status, after *Keyset, limit int) ([]*EventRequestView, error)
	// FindOpen lists every request in show-partners-members, oldest first, flagging the ones viewer has proposed to.
	FindOpen(ctx context.Context, viewerID uuid.UUID) ([]*OpenRequestView, error)
}

type MyRequestsFilter struct {
	Status *eventrequest.Status
	Cursor *Cursor
	Limit  int
}

type EventRequestQueries interface {
	MyRequests(ctx context.Context, requesterID uuid.UUID, filter MyRequestsFilter) ([]*EventRequestView, *Cursor, error)
	GetRequest(ctx context.Context, actorID, requestID uuid.UUID) (*RequestDetail, error)
	// GetByIDSystem skips visibility checks; used for idempotent replays.
	GetByIDSystem(ctx context.Context, requestID uuid.UUID) (*EventRequestView, error)
	OpenRequests(ctx context.Context, actorID uuid.UUID) ([]*OpenRequestView, error)
}

type eventRequestQueriesImpl struct {
	store EventRequestReadStore
	gate  *provider.Gate
}

func NewEventRequestQueries(store EventRequestReadStore, gate *provider.Gate) EventRequestQueries {
	return &eventRequestQueriesImpl{store: store, gate: gate}
}

func (q *eventRequestQueriesImpl) MyRequests(ctx context.Context, requesterID uuid.UUID, filter MyRequestsFilter) ([]*EventRequestView, *Cursor, error) {
	limit := ValidateLimit(filter.Limit)

	var after *Keyset
	if filter.Cursor != nil && filter.Cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(filter.Cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &Keyset{CreatedAt: createdAt, ID: id}
	}

	rows, err := q.store.FindByOwner(ctx, requesterID, filter.Status, after, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *eventRequestQueriesImpl) GetRequest(ctx context.Context, actorID, requestID uuid.UUID) (*RequestDetail, error) {
	view, err := q.store.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if view.OwnerID == actorID {
		return &RequestDetail{Full: view}, nil
	}

	// Providers may look at a request only while it sits in the open pool.
	if view.Status != eventrequest.StatusShowPartnersMembers.String() {
		return nil, ErrRequestAccess
	}
	eligible, err := q.gate.IsEligible(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrRequestAccess
	}

	pool, err := q.store.FindOpen(ctx, actorID)
	if err != nil {
		return nil, err
	}
	for _, open := range pool {
		if open.ID == requestID {
			return &RequestDetail{Open: open}, nil
		}
	}
	// Left the pool between the two reads.
	return nil, ErrRequestAccess
}

func (q *eventRequestQueriesImpl) GetByIDSystem(ctx context.Context, requestID uuid.UUID) (*EventRequestView, error) {
	return q.store.FindByID(ctx, requestID)
}

func (q *eventRequestQueriesImpl) OpenRequests(ctx context.Context, actorID uuid.UUID) ([]*OpenRequestView, error) {
	if _, err := q.gate.Admit(ctx, actorID); err != nil {
		return nil, err
	}
	return q.store.FindOpen(ctx, actorID)
}
