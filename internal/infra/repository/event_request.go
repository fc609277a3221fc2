package repository

import (
	"context"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/infra/repository/converter"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventRequestWriteQueries interface {
	CreateEventRequest(ctx context.Context, db query.DBTX, arg query.CreateEventRequestParams) error
	LockEventRequest(ctx context.Context, db query.DBTX, id uuid.UUID) (query.EventRequest, error)
	ListProposalIDsByRequest(ctx context.Context, db query.DBTX, requestID uuid.UUID) ([]uuid.UUID, error)
	UpdateEventRequestStatus(ctx context.Context, db query.DBTX, arg query.UpdateEventRequestStatusParams) (int64, error)
}

type EventRequestRepository struct {
	queries EventRequestWriteQueries
	db      query.DBTX
}

func NewEventRequestRepository(queries EventRequestWriteQueries, db query.DBTX) *EventRequestRepository {
	return &EventRequestRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.EventRequestRepository = (*EventRequestRepository)(nil)

func (r *EventRequestRepository) Create(ctx context.Context, req *eventrequest.EventRequest) error {
	if err := r.queries.CreateEventRequest(ctx, r.db, converter.EventRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create event request", err)
	}
	return nil
}

func (r *EventRequestRepository) LockByID(ctx context.Context, id uuid.UUID) (*eventrequest.EventRequest, error) {
	row, err := r.queries.LockEventRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, eventrequest.ErrRequestNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock event request", err)
	}

	ids, err := r.queries.ListProposalIDsByRequest(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposal ids", err)
	}

	req, err := converter.EventRequestFromRow(row, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event request row", err)
	}
	return req, nil
}

func (r *EventRequestRepository) UpdateStatus(ctx context.Context, req *eventrequest.EventRequest, from eventrequest.Status) error {
	n, err := r.queries.UpdateEventRequestStatus(ctx, r.db, converter.EventRequestToStatusParams(req, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update event request status", err)
	}
	if n == 0 {
		return shared.ErrStaleStatus
	}
	return nil
}
