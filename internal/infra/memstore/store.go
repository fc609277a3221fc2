// Package memstore keeps the workflow state in process memory. It backs the
// memory store driver and the use case tests.
package memstore

import (
	"context"
	"sync"
	"time"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type requestRow struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	details       eventrequest.Details
	status        eventrequest.Status
	charge        int64
	paymentStatus eventrequest.PaymentStatus
	adminNote     string
	processedBy   *uuid.UUID
	processedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type proposalRow struct {
	id          uuid.UUID
	requestID   uuid.UUID
	provider    proposal.ProviderSnapshot
	documentRef proposal.DocumentRef
	status      proposal.Status
	position    int
	submittedAt time.Time
	updatedAt   time.Time
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type Store struct {
	clock clock.Clock

	mu          sync.RWMutex
	requests    map[uuid.UUID]requestRow
	proposals   map[uuid.UUID]proposalRow
	byRequest   map[uuid.UUID][]uuid.UUID
	idempotency map[idemKey]shared.IdempotencyRecord
	profiles    map[uuid.UUID]provider.Profile

	locksMu sync.Mutex
	locks   map[string]*keyLock
}

// keyLock is dropped from Store.locks once no holder or waiter references it.
type keyLock struct {
	ch   chan struct{}
	refs int
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:       clk,
		requests:    make(map[uuid.UUID]requestRow),
		proposals:   make(map[uuid.UUID]proposalRow),
		byRequest:   make(map[uuid.UUID][]uuid.UUID),
		idempotency: make(map[idemKey]shared.IdempotencyRecord),
		profiles:    make(map[uuid.UUID]provider.Profile),
		locks:       make(map[string]*keyLock),
	}
}

// PutProfile inserts or replaces a provider profile.
func (s *Store) PutProfile(p provider.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.AccountID] = p
}

// lock blocks until the named lock is free or ctx ends and returns its release
// func. Locks are per key, so work on different requests never waits on each other.
func (s *Store) lock(ctx context.Context, key string) (func(), error) {
	s.locksMu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		s.locks[key] = l
	}
	l.refs++
	s.locksMu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			s.unref(key, l)
		}, nil
	case <-ctx.Done():
		s.unref(key, l)
		return nil, ctx.Err()
	}
}

func (s *Store) unref(key string, l *keyLock) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, key)
	}
}

func requestLockKey(id uuid.UUID) string {
	return "request:" + id.String()
}

func idempotencyLockKey(k idemKey) string {
	return "idempotency:" + k.key.String() + ":" + k.userID.String()
}

// Rows keep microsecond timestamps like the Postgres columns do.
func rowFromRequest(r *eventrequest.EventRequest) requestRow {
	return requestRow{
		id:            r.ID(),
		ownerID:       r.OwnerID(),
		details:       r.Details(),
		status:        r.Status(),
		charge:        r.Charge(),
		paymentStatus: r.PaymentStatus(),
		adminNote:     r.AdminNote(),
		processedBy:   r.ProcessedBy(),
		processedAt:   r.ProcessedAt(),
		createdAt:     r.CreatedAt().Truncate(time.Microsecond),
		updatedAt:     r.UpdatedAt().Truncate(time.Microsecond),
	}
}

func (row requestRow) toEntity(proposalIDs []uuid.UUID) *eventrequest.EventRequest {
	return eventrequest.Reconstruct(
		row.id, row.ownerID,
		row.details,
		row.status,
		row.charge,
		row.paymentStatus,
		row.adminNote,
		row.processedBy,
		row.processedAt,
		proposalIDs,
		row.createdAt, row.updatedAt,
	)
}

func rowFromProposal(p *proposal.Proposal) proposalRow {
	return proposalRow{
		id:          p.ID(),
		requestID:   p.RequestID(),
		provider:    p.Provider(),
		documentRef: p.DocumentRef(),
		status:      p.Status(),
		position:    p.Position(),
		submittedAt: p.SubmittedAt().Truncate(time.Microsecond),
		updatedAt:   p.UpdatedAt().Truncate(time.Microsecond),
	}
}

func (row proposalRow) toEntity() *proposal.Proposal {
	return proposal.Reconstruct(
		row.id, row.requestID,
		row.provider,
		row.documentRef,
		row.status,
		row.position,
		row.submittedAt, row.updatedAt,
	)
}
