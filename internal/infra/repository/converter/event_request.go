package converter

import (
	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func EventRequestToCreateParams(r *eventrequest.EventRequest) query.CreateEventRequestParams {
	d := r.Details()
	return query.CreateEventRequestParams{
		ID:              r.ID(),
		OwnerID:         r.OwnerID(),
		EventType:       d.EventType().String(),
		OtherLabel:      d.OtherLabel(),
		GuestCount:      int32(d.GuestCount().Int()), // #nosec G115 -- guest counts are far below int32 range
		Budget:          d.Budget().String(),
		Activities:      d.Activities(),
		SpecialRequests: d.SpecialRequests(),
		Status:          r.Status().String(),
		Charge:          r.Charge(),
		PaymentStatus:   string(r.PaymentStatus()),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func EventRequestToStatusParams(r *eventrequest.EventRequest, from eventrequest.Status) query.UpdateEventRequestStatusParams {
	return query.UpdateEventRequestStatusParams{
		ID:             r.ID(),
		ExpectedStatus: from.String(),
		Status:         r.Status().String(),
		AdminNote:      r.AdminNote(),
		ProcessedBy:    pgconv.UUIDPtrToPgtype(r.ProcessedBy()),
		ProcessedAt:    pgconv.TimePtrToPgtype(r.ProcessedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func DetailsFromRow(row query.EventRequest) (eventrequest.Details, error) {
	return eventrequest.NewDetails(eventrequest.DetailsInput{
		EventType:       row.EventType,
		OtherLabel:      row.OtherLabel,
		GuestCount:      int(row.GuestCount),
		Budget:          row.Budget,
		Activities:      row.Activities,
		SpecialRequests: row.SpecialRequests,
	})
}

func EventRequestFromRow(row query.EventRequest, proposalIDs []uuid.UUID) (*eventrequest.EventRequest, error) {
	details, err := DetailsFromRow(row)
	if err != nil {
		return nil, errs.Wrapf(err, "stored event request %s has invalid details", row.ID)
	}
	status, err := eventrequest.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored event request %s has invalid status", row.ID)
	}
	return eventrequest.Reconstruct(
		row.ID, row.OwnerID,
		details,
		status,
		row.Charge,
		eventrequest.PaymentStatus(row.PaymentStatus),
		row.AdminNote,
		pgconv.UUIDPtrFromPgtype(row.ProcessedBy),
		pgconv.TimePtrFromPgtype(row.ProcessedAt),
		proposalIDs,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
