package request

import (
	"strings"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateEventRequestRequest struct {
	EventType       string   `json:"event_type" binding:"required"`
	OtherLabel      string   `json:"other_label" binding:"max=100"`
	GuestCount      int      `json:"guest_count" binding:"required,min=1"`
	Budget          string   `json:"budget" binding:"required,max=200"`
	Activities      []string `json:"activities" binding:"required,min=1,dive,max=100"`
	SpecialRequests *string  `json:"special_requests,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateEventRequestRequest) ToInput() (eventrequest.DetailsInput, error) {
	var in eventrequest.DetailsInput
	if err := copier.Copy(&in, &r); err != nil {
		return eventrequest.DetailsInput{}, err
	}
	in.SpecialRequests = patch.Coalesce(r.SpecialRequests, "")
	return in, nil
}

type ListMyRequestsQuery struct {
	Status string `form:"status"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// StatusFilter returns nil when no status was given.
func (q ListMyRequestsQuery) StatusFilter() (*eventrequest.Status, error) {
	raw := strings.TrimSpace(q.Status)
	if raw == "" {
		return nil, nil
	}
	status, err := eventrequest.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

type TransitionRequest struct {
	Event string  `json:"event" binding:"required"`
	Note  *string `json:"note,omitempty" binding:"omitempty,max=2000"`
}

func (r TransitionRequest) NoteOrEmpty() string {
	return patch.Coalesce(r.Note, "")
}

// ParseIdempotencyKey accepts an absent header; a present one must be a UUID.
func ParseIdempotencyKey(header string) (*uuid.UUID, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, nil
	}
	key, err := uuid.Parse(header)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
