package queries

import (
	"time"

	"github.com/google/uuid"
)

// EventRequestView is the read model of an event request. ProposalCount is
// derived from the proposal set, never stored.
type EventRequestView struct {
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

// RequestDetail holds exactly one projection of a request: Full for its owner,
// Open for an eligible provider looking at the pool.
type RequestDetail struct {
	Full *EventRequestView
	Open *OpenRequestView
}

func (d *RequestDetail) ID() uuid.UUID {
	if d.Full != nil {
		return d.Full.ID
	}
	return d.Open.ID
}

// OpenRequestView is what providers see in the open pool: no owner data, no competitor documents.
type OpenRequestView struct {
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

type ProposalView struct {
	ID            uuid.UUID `json:"id"`
	RequestID     uuid.UUID `json:"request_id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	DocumentRef   string    `json:"document_ref"`
	Status        string    `json:"status"`
	Position      int       `json:"position"`
	SubmittedAt   time.Time `json:"submitted_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MyProposalView joins a provider's proposal with the current status of its request.
type MyProposalView struct {
	ProposalView
	RequestStatus string `json:"request_status"`
	EventType     string `json:"event_type"`
}
