package eventrequest

import (
	"strings"
	"time"

	"event-customize/internal/pkg/clock"

	"github.com/google/uuid"
)

// AdminAction carries the administrative actor's audit fields for an admin edge.
type AdminAction struct {
	AdminID uuid.UUID
	Note    string
}

type EventRequest struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	details       Details
	status        Status
	charge        int64
	paymentStatus PaymentStatus
	adminNote     string
	processedBy   *uuid.UUID
	processedAt   *time.Time
	proposalIDs   []uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

// NewEventRequest builds a pending, paid request. Callers invoke it only after the
// ledger has confirmed the charge; id is the ledger reference used for that charge.
func NewEventRequest(clk clock.Clock, id, ownerID uuid.UUID, details Details, charge int64) (*EventRequest, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if charge <= 0 {
		return nil, ErrInvalidCharge
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	// Stored timestamps carry microseconds, the precision list cursors encode.
	now := clk.Now().Truncate(time.Microsecond)
	return &EventRequest{
		id:            id,
		ownerID:       ownerID,
		details:       details,
		status:        StatusPending,
		charge:        charge,
		paymentStatus: PaymentStatusPaid,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	details Details,
	status Status,
	charge int64,
	paymentStatus PaymentStatus,
	adminNote string,
	processedBy *uuid.UUID,
	processedAt *time.Time,
	proposalIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *EventRequest {
	ids := make([]uuid.UUID, len(proposalIDs))
	copy(ids, proposalIDs)
	return &EventRequest{
		id:            id,
		ownerID:       ownerID,
		details:       details,
		status:        status,
		charge:        charge,
		paymentStatus: paymentStatus,
		adminNote:     adminNote,
		processedBy:   processedBy,
		processedAt:   processedAt,
		proposalIDs:   ids,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply moves the request along exactly one edge of the lifecycle table and
// returns the status it left, which the store uses as the compare-and-swap guard.
func (r *EventRequest) Apply(ev Event, action *AdminAction, now time.Time) (Status, error) {
	next, err := Next(r.status, ev)
	if err != nil {
		return "", err
	}

	prev := r.status
	r.status = next
	r.updatedAt = now

	if ev.IsAdmin() && action != nil {
		adminID := action.AdminID
		at := now
		r.processedBy = &adminID
		r.processedAt = &at
		if note := strings.TrimSpace(action.Note); note != "" {
			r.adminNote = note
		}
	}
	return prev, nil
}

func (r *EventRequest) AppendProposal(id uuid.UUID) {
	r.proposalIDs = append(r.proposalIDs, id)
}

func (r *EventRequest) IsOwnedBy(accountID uuid.UUID) bool {
	return r.ownerID == accountID
}

func (r *EventRequest) ID() uuid.UUID                { return r.id }
func (r *EventRequest) OwnerID() uuid.UUID           { return r.ownerID }
func (r *EventRequest) Details() Details             { return r.details }
func (r *EventRequest) Status() Status               { return r.status }
func (r *EventRequest) Charge() int64                { return r.charge }
func (r *EventRequest) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *EventRequest) AdminNote() string            { return r.adminNote }
func (r *EventRequest) ProcessedBy() *uuid.UUID      { return r.processedBy }
func (r *EventRequest) ProcessedAt() *time.Time      { return r.processedAt }
func (r *EventRequest) CreatedAt() time.Time         { return r.createdAt }
func (r *EventRequest) UpdatedAt() time.Time         { return r.updatedAt }
func (r *EventRequest) ProposalCount() int           { return len(r.proposalIDs) }

func (r *EventRequest) ProposalIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(r.proposalIDs))
	copy(out, r.proposalIDs)
	return out
}
