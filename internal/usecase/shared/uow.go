package shared

import (
	"context"
	"time"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/errs"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// Locks taken through the Tx are held until fn returns and the transaction ends.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	EventRequests() EventRequestRepository
	Proposals() ProposalRepository
	Idempotency() IdempotencyRepository
	// ProviderProfiles reads provider records inside the transaction.
	ProviderProfiles() provider.ProfileReader
}

type EventRequestRepository interface {
	Create(ctx context.Context, req *eventrequest.EventRequest) error
	// LockByID loads the request and takes its exclusive per-request lock.
	// Requests with other ids are never blocked by it.
	LockByID(ctx context.Context, id uuid.UUID) (*eventrequest.EventRequest, error)
	// UpdateStatus persists req's status and audit fields only if the stored status still equals from.
	UpdateStatus(ctx context.Context, req *eventrequest.EventRequest, from eventrequest.Status) error
}

type ProposalRepository interface {
	// Create fails with a duplicate-submission error when (request, provider) already exists.
	Create(ctx context.Context, p *proposal.Proposal) error
	ExistsForProvider(ctx context.Context, requestID, providerID uuid.UUID) (bool, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*proposal.Proposal, error)
	// UpdateStatus persists p's status only if the stored status is still pending.
	UpdateStatus(ctx context.Context, p *proposal.Proposal) error
}

type IdempotencyRepository interface {
	// Claim inserts a processing record. It returns the existing record instead when the key was already claimed
	// and still unexpired; claimed reports which case happened.
	Claim(ctx context.Context, rec IdempotencyRecord) (existing *IdempotencyRecord, claimed bool, err error)
	Complete(ctx context.Context, key, userID, requestID uuid.UUID) error
	Release(ctx context.Context, key, userID uuid.UUID) error
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultRequestID *uuid.UUID
	ExpiresAt       time.Time
}

// ErrStaleStatus reports a compare-and-swap that lost: the stored status no longer matches what the caller read.
var ErrStaleStatus = errs.Mark(errs.New("status changed concurrently"), errs.ErrInvalidState)
