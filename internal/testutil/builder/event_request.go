//go:build unit || e2e || property

package builder

import (
	"time"

	"event-customize/internal/domain/eventrequest"
	reqdto "event-customize/internal/handler/dto/request"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventRequestBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	EventType       string
	OtherLabel      string
	GuestCount      int
	Budget          string
	Activities      []string
	SpecialRequests string
	Status          eventrequest.Status
	Charge          int64
	CreatedAt       time.Time
}

func NewEventRequestBuilder() *EventRequestBuilder {
	return &EventRequestBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		EventType:       "wedding",
		GuestCount:      80,
		Budget:          "5000-8000 USD",
		Activities:      []string{"catering", "live band"},
		SpecialRequests: "vegetarian menu",
		Status:          eventrequest.StatusPending,
		Charge:          50,
		CreatedAt:       time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *EventRequestBuilder) With(mutate func(*EventRequestBuilder)) *EventRequestBuilder {
	mutate(b)
	return b
}

func (b *EventRequestBuilder) BuildDetailsInput() eventrequest.DetailsInput {
	activities := make([]string, len(b.Activities))
	copy(activities, b.Activities)
	return eventrequest.DetailsInput{
		EventType:       b.EventType,
		OtherLabel:      b.OtherLabel,
		GuestCount:      b.GuestCount,
		Budget:          b.Budget,
		Activities:      activities,
		SpecialRequests: b.SpecialRequests,
	}
}

// BuildDetails panics on invalid input; builders hold valid defaults.
func (b *EventRequestBuilder) BuildDetails() eventrequest.Details {
	d, err := eventrequest.NewDetails(b.BuildDetailsInput())
	if err != nil {
		panic(err)
	}
	return d
}

// BuildDomain reconstructs the aggregate directly in b.Status.
func (b *EventRequestBuilder) BuildDomain() *eventrequest.EventRequest {
	return eventrequest.Reconstruct(
		b.ID, b.OwnerID,
		b.BuildDetails(),
		b.Status,
		b.Charge,
		eventrequest.PaymentStatusPaid,
		"",
		nil,
		nil,
		nil,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *EventRequestBuilder) BuildNew(clk clock.Clock) *eventrequest.EventRequest {
	req, err := eventrequest.NewEventRequest(clk, b.ID, b.OwnerID, b.BuildDetails(), b.Charge)
	if err != nil {
		panic(err)
	}
	return req
}

func (b *EventRequestBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequestRequest {
	var special *string
	if b.SpecialRequests != "" {
		s := b.SpecialRequests
		special = &s
	}
	return reqdto.CreateEventRequestRequest{
		EventType:       b.EventType,
		OtherLabel:      b.OtherLabel,
		GuestCount:      b.GuestCount,
		Budget:          b.Budget,
		Activities:      b.Activities,
		SpecialRequests: special,
	}
}

func (b *EventRequestBuilder) BuildView() *queries.EventRequestView {
	return &queries.EventRequestView{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		EventType:       b.EventType,
		OtherLabel:      b.OtherLabel,
		GuestCount:      b.GuestCount,
		Budget:          b.Budget,
		Activities:      b.Activities,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status.String(),
		Charge:          b.Charge,
		PaymentStatus:   string(eventrequest.PaymentStatusPaid),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *EventRequestBuilder) BuildRow() query.EventRequest {
	return query.EventRequest{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		EventType:       b.EventType,
		OtherLabel:      b.OtherLabel,
		GuestCount:      int32(b.GuestCount),
		Budget:          b.Budget,
		Activities:      b.Activities,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status.String(),
		Charge:          b.Charge,
		PaymentStatus:   string(eventrequest.PaymentStatusPaid),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}
