package memstore

import (
	"context"
	"time"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

var errRequestExists = errs.New("event request id already exists")

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within stages every write of fn and applies them atomically when fn succeeds.
// Locks taken by fn are released after the writes are visible.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(u.store)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

type idemWrite struct {
	rec     shared.IdempotencyRecord
	deleted bool
}

type memTx struct {
	store *Store
	held  map[string]func()

	requests    map[uuid.UUID]requestRow
	proposals   map[uuid.UUID]proposalRow
	appended    map[uuid.UUID][]uuid.UUID
	idempotency map[idemKey]idemWrite
}

func newMemTx(store *Store) *memTx {
	return &memTx{
		store:       store,
		held:        make(map[string]func()),
		requests:    make(map[uuid.UUID]requestRow),
		proposals:   make(map[uuid.UUID]proposalRow),
		appended:    make(map[uuid.UUID][]uuid.UUID),
		idempotency: make(map[idemKey]idemWrite),
	}
}

func (t *memTx) acquire(ctx context.Context, key string) error {
	if _, ok := t.held[key]; ok {
		return nil
	}
	release, err := t.store.lock(ctx, key)
	if err != nil {
		return errs.Wrap(err, "acquire lock")
	}
	t.held[key] = release
	return nil
}

func (t *memTx) releaseLocks() {
	for key, release := range t.held {
		release()
		delete(t.held, key)
	}
}

func (t *memTx) commit() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range t.requests {
		s.requests[id] = row
	}
	for id, row := range t.proposals {
		s.proposals[id] = row
	}
	for requestID, ids := range t.appended {
		s.byRequest[requestID] = append(s.byRequest[requestID], ids...)
	}
	for k, w := range t.idempotency {
		if w.deleted {
			delete(s.idempotency, k)
			continue
		}
		s.idempotency[k] = w.rec
	}
}

func (t *memTx) request(id uuid.UUID) (requestRow, []uuid.UUID, bool) {
	t.store.mu.RLock()
	row, ok := t.store.requests[id]
	committed := t.store.byRequest[id]
	ids := make([]uuid.UUID, 0, len(committed)+len(t.appended[id]))
	ids = append(ids, committed...)
	t.store.mu.RUnlock()

	if staged, found := t.requests[id]; found {
		row, ok = staged, true
	}
	ids = append(ids, t.appended[id]...)
	return row, ids, ok
}

func (t *memTx) proposal(id uuid.UUID) (proposalRow, bool) {
	if staged, ok := t.proposals[id]; ok {
		return staged, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	row, ok := t.store.proposals[id]
	return row, ok
}

func (t *memTx) EventRequests() shared.EventRequestRepository { return (*requestRepo)(t) }
func (t *memTx) Proposals() shared.ProposalRepository         { return (*proposalRepo)(t) }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return (*idempotencyRepo)(t) }
func (t *memTx) ProviderProfiles() provider.ProfileReader     { return t.store }

type requestRepo memTx

func (r *requestRepo) Create(_ context.Context, req *eventrequest.EventRequest) error {
	t := (*memTx)(r)
	if _, _, exists := t.request(req.ID()); exists {
		return errRequestExists
	}
	t.requests[req.ID()] = rowFromRequest(req)
	return nil
}

func (r *requestRepo) LockByID(ctx context.Context, id uuid.UUID) (*eventrequest.EventRequest, error) {
	t := (*memTx)(r)
	if err := t.acquire(ctx, requestLockKey(id)); err != nil {
		return nil, err
	}
	row, ids, ok := t.request(id)
	if !ok {
		return nil, eventrequest.ErrRequestNotFound
	}
	return row.toEntity(ids), nil
}

func (r *requestRepo) UpdateStatus(_ context.Context, req *eventrequest.EventRequest, from eventrequest.Status) error {
	t := (*memTx)(r)
	row, _, ok := t.request(req.ID())
	if !ok {
		return eventrequest.ErrRequestNotFound
	}
	if row.status != from {
		return shared.ErrStaleStatus
	}
	row.status = req.Status()
	row.adminNote = req.AdminNote()
	row.processedBy = req.ProcessedBy()
	row.processedAt = req.ProcessedAt()
	row.updatedAt = req.UpdatedAt().Truncate(time.Microsecond)
	t.requests[req.ID()] = row
	return nil
}

type proposalRepo memTx

func (r *proposalRepo) Create(_ context.Context, p *proposal.Proposal) error {
	t := (*memTx)(r)
	exists, _ := r.ExistsForProvider(context.Background(), p.RequestID(), p.ProviderID())
	if exists {
		return proposal.ErrDuplicateSubmission
	}
	t.proposals[p.ID()] = rowFromProposal(p)
	t.appended[p.RequestID()] = append(t.appended[p.RequestID()], p.ID())
	return nil
}

func (r *proposalRepo) ExistsForProvider(_ context.Context, requestID, providerID uuid.UUID) (bool, error) {
	t := (*memTx)(r)
	_, ids, _ := t.request(requestID)
	for _, id := range ids {
		if row, ok := t.proposal(id); ok && row.provider.ProviderID == providerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *proposalRepo) ListByRequest(_ context.Context, requestID uuid.UUID) ([]*proposal.Proposal, error) {
	t := (*memTx)(r)
	_, ids, _ := t.request(requestID)
	out := make([]*proposal.Proposal, 0, len(ids))
	for _, id := range ids {
		if row, ok := t.proposal(id); ok {
			out = append(out, row.toEntity())
		}
	}
	return out, nil
}

func (r *proposalRepo) UpdateStatus(_ context.Context, p *proposal.Proposal) error {
	t := (*memTx)(r)
	row, ok := t.proposal(p.ID())
	if !ok {
		return proposal.ErrProposalNotFound
	}
	if row.status != proposal.StatusPending {
		return shared.ErrStaleStatus
	}
	row.status = p.Status()
	row.updatedAt = p.UpdatedAt().Truncate(time.Microsecond)
	t.proposals[p.ID()] = row
	return nil
}

type idempotencyRepo memTx

func (r *idempotencyRepo) current(k idemKey) (shared.IdempotencyRecord, bool) {
	t := (*memTx)(r)
	if w, ok := t.idempotency[k]; ok {
		return w.rec, !w.deleted
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	rec, ok := t.store.idempotency[k]
	return rec, ok
}

func (r *idempotencyRepo) Claim(ctx context.Context, rec shared.IdempotencyRecord) (*shared.IdempotencyRecord, bool, error) {
	t := (*memTx)(r)
	k := idemKey{key: rec.Key, userID: rec.UserID}
	if err := t.acquire(ctx, idempotencyLockKey(k)); err != nil {
		return nil, false, err
	}

	if existing, ok := r.current(k); ok && existing.ExpiresAt.After(t.store.clock.Now()) {
		return &existing, false, nil
	}
	rec.Status = shared.IdempotencyStatusProcessing
	rec.ResultRequestID = nil
	t.idempotency[k] = idemWrite{rec: rec}
	return nil, true, nil
}

func (r *idempotencyRepo) Complete(ctx context.Context, key, userID, requestID uuid.UUID) error {
	t := (*memTx)(r)
	k := idemKey{key: key, userID: userID}
	if err := t.acquire(ctx, idempotencyLockKey(k)); err != nil {
		return err
	}
	rec, ok := r.current(k)
	if !ok {
		return errs.New("idempotency key not claimed")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultRequestID = &requestID
	t.idempotency[k] = idemWrite{rec: rec}
	return nil
}

func (r *idempotencyRepo) Release(ctx context.Context, key, userID uuid.UUID) error {
	t := (*memTx)(r)
	k := idemKey{key: key, userID: userID}
	if err := t.acquire(ctx, idempotencyLockKey(k)); err != nil {
		return err
	}
	rec, ok := r.current(k)
	if !ok || rec.Status != shared.IdempotencyStatusProcessing {
		return nil
	}
	t.idempotency[k] = idemWrite{deleted: true}
	return nil
}
