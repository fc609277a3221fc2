package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventRequest struct {
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
	AdminNote       string
	ProcessedBy     pgtype.UUID
	ProcessedAt     pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type EventRequestWithCount struct {
	EventRequest
	ProposalCount int64
}

type OpenEventRequest struct {
	ID              uuid.UUID
	EventType       string
	OtherLabel      string
	GuestCount      int32
	Budget          string
	Activities      []string
	SpecialRequests string
	ProposalCount   int64
	HasProposed     bool
	CreatedAt       pgtype.Timestamptz
}

type Proposal struct {
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

type ProviderProposal struct {
	Proposal
	RequestStatus string
	EventType     string
}

type ProviderProfile struct {
	AccountID        uuid.UUID
	Name             string
	Email            string
	IsPartner        bool
	PartnerExpiresAt pgtype.Timestamptz
	IsMember         bool
	MemberExpiresAt  pgtype.Timestamptz
}

type Wallet struct {
	AccountID uuid.UUID
	Balance   int64
}

type WalletTransaction struct {
	AccountID uuid.UUID
	Reference uuid.UUID
	Kind      string
	Amount    int64
}

type IdempotencyKey struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultRequestID pgtype.UUID
	ExpiresAt       pgtype.Timestamptz
}
