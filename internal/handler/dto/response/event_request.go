package response

import (
	"time"

	"event-customize/internal/usecase/commands"
	"event-customize/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventRequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	EventType       string     `json:"event_type"`
	OtherLabel      string     `json:"other_label,omitempty"`
	GuestCount      int        `json:"guest_count"`
	Budget          string     `json:"budget"`
	Activities      []string   `json:"activities"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	Status          string     `json:"status"`
	Charge          int64      `json:"charge"`
	PaymentStatus   string     `json:"payment_status"`
	AdminNote       string     `json:"admin_note,omitempty"`
	ProcessedBy     *uuid.UUID `json:"processed_by,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	ProposalCount   int        `json:"proposal_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromEventRequestView(v *queries.EventRequestView) *EventRequestResponse {
	var res EventRequestResponse
	_ = copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true})
	return &res
}

type CreateEventRequestResponse struct {
	RequestID uuid.UUID             `json:"request_id"`
	Status    string                `json:"status"`
	Replayed  bool                  `json:"replayed"`
	Request   *EventRequestResponse `json:"request"`
}

func FromCreateResult(r *commands.CreateRequestResult) *CreateEventRequestResponse {
	return &CreateEventRequestResponse{
		RequestID: r.Request.ID,
		Status:    r.Request.Status,
		Replayed:  r.IsReplayed,
		Request:   FromEventRequestView(r.Request),
	}
}

type EventRequestListResponse struct {
	Items      []*EventRequestResponse `json:"items"`
	NextCursor *string                 `json:"next_cursor,omitempty"`
}

func FromEventRequestList(views []*queries.EventRequestView, next *queries.Cursor) *EventRequestListResponse {
	items := make([]*EventRequestResponse, len(views))
	for i, v := range views {
		items[i] = FromEventRequestView(v)
	}
	res := &EventRequestListResponse{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res
}

type OpenRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	EventType       string    `json:"event_type"`
	OtherLabel      string    `json:"other_label,omitempty"`
	GuestCount      int       `json:"guest_count"`
	Budget          string    `json:"budget"`
	Activities      []string  `json:"activities"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	ProposalCount   int       `json:"proposal_count"`
	HasProposed     bool      `json:"has_proposed"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromOpenRequest(v *queries.OpenRequestView) *OpenRequestResponse {
	var res OpenRequestResponse
	_ = copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true})
	return &res
}

// FromRequestDetail renders the owner view or the open-pool view, whichever the detail carries.
func FromRequestDetail(d *queries.RequestDetail) any {
	if d.Full != nil {
		return FromEventRequestView(d.Full)
	}
	return FromOpenRequest(d.Open)
}

func FromOpenRequests(views []*queries.OpenRequestView) []*OpenRequestResponse {
	res := make([]*OpenRequestResponse, 0, len(views))
	_ = copier.CopyWithOption(&res, &views, copier.Option{DeepCopy: true})
	return res
}

type TransitionResponse struct {
	RequestID           uuid.UUID   `json:"request_id"`
	From                string      `json:"from"`
	To                  string      `json:"to"`
	RejectedProposalIDs []uuid.UUID `json:"rejected_proposal_ids"`
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	rejected := r.RejectedProposalIDs
	if rejected == nil {
		rejected = []uuid.UUID{}
	}
	return &TransitionResponse{
		RequestID:           r.RequestID,
		From:                r.From.String(),
		To:                  r.To.String(),
		RejectedProposalIDs: rejected,
	}
}
