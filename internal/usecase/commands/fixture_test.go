//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/infra/ledger"
	"event-customize/internal/infra/memstore"
	"event-customize/internal/infra/storage"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/config"
	"event-customize/internal/testutil/builder"
	"event-customize/internal/usecase/commands"
	"event-customize/internal/usecase/queries"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type sentNotification struct {
	accountID uuid.UUID
	kind      shared.NotificationKind
	payload   map[string]any
}

type recordingDispatcher struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (d *recordingDispatcher) Notify(_ context.Context, accountID uuid.UUID, kind shared.NotificationKind, payload map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sentNotification{accountID: accountID, kind: kind, payload: payload})
	return nil
}

func (d *recordingDispatcher) byKind(kind shared.NotificationKind) []sentNotification {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []sentNotification
	for _, n := range d.sent {
		if n.kind == kind {
			out = append(out, n)
		}
	}
	return out
}

type fixture struct {
	t          *testing.T
	clk        *clock.MockClock
	store      *memstore.Store
	wallet     *ledger.MemoryLedger
	dispatcher *recordingDispatcher
	objects    *storage.MemoryStore
	cfg        config.WorkflowConfig

	requests        commands.EventRequestCommands
	proposals       commands.ProposalCommands
	documents       commands.DocumentCommands
	requestQueries  queries.EventRequestQueries
	proposalQueries queries.ProposalQueries
}

type fixtureOption func(*fixtureOptions)

type fixtureOptions struct {
	cfg    config.WorkflowConfig
	ledger func(*ledger.MemoryLedger) shared.LedgerGateway
}

func withOrphanPolicy(policy string) fixtureOption {
	return func(o *fixtureOptions) { o.cfg.OrphanProposals = policy }
}

func withLedger(wrap func(*ledger.MemoryLedger) shared.LedgerGateway) fixtureOption {
	return func(o *fixtureOptions) { o.ledger = wrap }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	o := fixtureOptions{cfg: config.NewTestConfig().Workflow}
	o.cfg.LedgerTimeout = 200 * time.Millisecond
	for _, opt := range opts {
		opt(&o)
	}

	clk := clock.NewMockClock(fixtureNow)
	store := memstore.New(clk)
	wallet := ledger.NewMemoryLedger()
	var gateway shared.LedgerGateway = wallet
	if o.ledger != nil {
		gateway = o.ledger(wallet)
	}
	dispatcher := &recordingDispatcher{}
	objects := storage.NewMemoryStore("proposals/")
	uow := memstore.NewUnitOfWork(store)
	gate := provider.NewGate(store, clk)
	requestQueries := queries.NewEventRequestQueries(store, gate)

	return &fixture{
		t:               t,
		clk:             clk,
		store:           store,
		wallet:          wallet,
		dispatcher:      dispatcher,
		objects:         objects,
		cfg:             o.cfg,
		requests:        commands.NewEventRequestCommands(uow, gateway, requestQueries, dispatcher, clk, o.cfg),
		proposals:       commands.NewProposalCommands(uow, gate, dispatcher, clk, o.cfg),
		documents:       commands.NewDocumentCommands(objects, gate, 1<<20),
		requestQueries:  requestQueries,
		proposalQueries: queries.NewProposalQueries(store, store),
	}
}

func (f *fixture) fund(accountID uuid.UUID, amount int64) {
	f.t.Helper()
	require.NoError(f.t, f.wallet.Deposit(context.Background(), accountID, amount, uuid.New()))
}

// provider registers an eligible provider whose partner tier outlives the test.
func (f *fixture) provider() uuid.UUID {
	p := builder.NewProfileBuilder().PartnerUntil(fixtureNow.Add(30 * 24 * time.Hour)).Build()
	f.store.PutProfile(p)
	return p.AccountID
}

func (f *fixture) create(ownerID uuid.UUID) *commands.CreateRequestResult {
	f.t.Helper()
	res, err := f.requests.CreateRequest(context.Background(), commands.CreateRequestInput{
		RequesterID: ownerID,
		Details:     builder.NewEventRequestBuilder().BuildDetailsInput(),
	})
	require.NoError(f.t, err)
	return res
}

func (f *fixture) transition(requestID uuid.UUID, ev eventrequest.Event) *commands.TransitionResult {
	f.t.Helper()
	res, err := f.requests.Transition(context.Background(), commands.TransitionInput{
		RequestID: requestID,
		Event:     ev.String(),
		AdminID:   uuid.New(),
	})
	require.NoError(f.t, err)
	return res
}

// openRequest creates a funded request and walks it into the open pool.
func (f *fixture) openRequest(ownerID uuid.UUID) uuid.UUID {
	f.t.Helper()
	f.fund(ownerID, f.cfg.RequestCharge)
	id := f.create(ownerID).Request.ID
	f.transition(id, eventrequest.EventAdminReview)
	f.transition(id, eventrequest.EventAdminOpenToProviders)
	return id
}

func (f *fixture) submit(requestID, providerID uuid.UUID) *proposal.Proposal {
	f.t.Helper()
	p, err := f.proposals.Submit(context.Background(), commands.SubmitProposalInput{
		RequestID:   requestID,
		ProviderID:  providerID,
		DocumentRef: "https://docs.example/" + providerID.String() + ".pdf",
	})
	require.NoError(f.t, err)
	return p
}

func (f *fixture) status(requestID uuid.UUID) string {
	f.t.Helper()
	view, err := f.requestQueries.GetByIDSystem(context.Background(), requestID)
	require.NoError(f.t, err)
	return view.Status
}
