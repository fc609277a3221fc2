package readstore

import (
	"context"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventRequestViewQueries interface {
	GetEventRequestWithCount(ctx context.Context, db query.DBTX, id uuid.UUID) (query.EventRequestWithCount, error)
	ListEventRequestsByOwner(ctx context.Context, db query.DBTX, arg query.ListEventRequestsByOwnerParams) ([]query.EventRequestWithCount, error)
	ListOpenEventRequests(ctx context.Context, db query.DBTX, viewerID uuid.UUID) ([]query.OpenEventRequest, error)
}

type EventRequestReadStore struct {
	queries EventRequestViewQueries
	db      query.DBTX
}

func NewEventRequestReadStore(queries EventRequestViewQueries, db query.DBTX) *EventRequestReadStore {
	return &EventRequestReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.EventRequestReadStore = (*EventRequestReadStore)(nil)

func (r *EventRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventRequestView, error) {
	row, err := r.queries.GetEventRequestWithCount(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, eventrequest.ErrRequestNotFound
		}
		return nil, infra.WrapRepoErr("failed to get event request view", err)
	}
	return toEventRequestView(row), nil
}

func (r *EventRequestReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *eventrequest.Status, after *queries.Keyset, limit int) ([]*queries.EventRequestView, error) {
	params := query.ListEventRequestsByOwnerParams{
		OwnerID: ownerID,
		Limit:   int32(limit), // #nosec G115 -- limit is capped by queries.ValidateLimit
	}
	if status != nil {
		params.Status = pgtype.Text{String: status.String(), Valid: true}
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListEventRequestsByOwner(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event requests by owner", err)
	}
	out := make([]*queries.EventRequestView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEventRequestView(row))
	}
	return out, nil
}

func (r *EventRequestReadStore) FindOpen(ctx context.Context, viewerID uuid.UUID) ([]*queries.OpenRequestView, error) {
	rows, err := r.queries.ListOpenEventRequests(ctx, r.db, viewerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open event requests", err)
	}
	out := make([]*queries.OpenRequestView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.OpenRequestView{
			ID:              row.ID,
			EventType:       row.EventType,
			OtherLabel:      row.OtherLabel,
			GuestCount:      int(row.GuestCount),
			Budget:          row.Budget,
			Activities:      row.Activities,
			SpecialRequests: row.SpecialRequests,
			ProposalCount:   int(row.ProposalCount),
			HasProposed:     row.HasProposed,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func toEventRequestView(row query.EventRequestWithCount) *queries.EventRequestView {
	return &queries.EventRequestView{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		EventType:       row.EventType,
		OtherLabel:      row.OtherLabel,
		GuestCount:      int(row.GuestCount),
		Budget:          row.Budget,
		Activities:      row.Activities,
		SpecialRequests: row.SpecialRequests,
		Status:          row.Status,
		Charge:          row.Charge,
		PaymentStatus:   row.PaymentStatus,
		AdminNote:       row.AdminNote,
		ProcessedBy:     pgconv.UUIDPtrFromPgtype(row.ProcessedBy),
		ProcessedAt:     pgconv.TimePtrFromPgtype(row.ProcessedAt),
		ProposalCount:   int(row.ProposalCount),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
