//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/infra/memstore"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/testutil/builder"
	"event-customize/internal/usecase/queries"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type env struct {
	t         *testing.T
	clk       *clock.MockClock
	store     *memstore.Store
	uow       shared.UnitOfWork
	requests  queries.EventRequestQueries
	proposals queries.ProposalQueries
}

func newEnv(t *testing.T) *env {
	clk := clock.NewMockClock(baseTime)
	store := memstore.New(clk)
	gate := provider.NewGate(store, clk)
	return &env{
		t:         t,
		clk:       clk,
		store:     store,
		uow:       memstore.NewUnitOfWork(store),
		requests:  queries.NewEventRequestQueries(store, gate),
		proposals: queries.NewProposalQueries(store, store),
	}
}

// seedRequest stores a request in status st, created at baseTime plus offset.
func (e *env) seedRequest(ownerID uuid.UUID, st eventrequest.Status, offset time.Duration) uuid.UUID {
	e.t.Helper()
	b := builder.NewEventRequestBuilder().With(func(b *builder.EventRequestBuilder) {
		b.OwnerID = ownerID
		b.Status = st
		b.CreatedAt = baseTime.Add(offset)
	})
	err := e.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.EventRequests().Create(ctx, b.BuildDomain())
	})
	require.NoError(e.t, err)
	return b.ID
}

func (e *env) seedProposal(requestID, providerID uuid.UUID) uuid.UUID {
	e.t.Helper()
	b := builder.NewProposalBuilder().With(func(b *builder.ProposalBuilder) {
		b.RequestID = requestID
		b.ProviderID = providerID
	})
	err := e.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Proposals().Create(ctx, b.BuildDomain())
	})
	require.NoError(e.t, err)
	return b.ID
}

func (e *env) eligibleProvider() uuid.UUID {
	p := builder.NewProfileBuilder().MemberUntil(baseTime.Add(24 * time.Hour)).Build()
	e.store.PutProfile(p)
	return p.AccountID
}

func TestMyRequestsPagination(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		ids = append(ids, e.seedRequest(owner, eventrequest.StatusPending, time.Duration(i)*time.Minute))
	}
	e.seedRequest(uuid.New(), eventrequest.StatusPending, time.Hour)

	page1, next, err := e.requests.MyRequests(ctx, owner, queries.MyRequestsFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, next)
	assert.Equal(t, ids[4], page1[0].ID)
	assert.Equal(t, ids[3], page1[1].ID)

	page2, next, err := e.requests.MyRequests(ctx, owner, queries.MyRequestsFilter{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[2], page2[0].ID)
	assert.Equal(t, ids[1], page2[1].ID)

	page3, next, err := e.requests.MyRequests(ctx, owner, queries.MyRequestsFilter{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, ids[0], page3[0].ID)
	assert.Nil(t, next)
}

func TestMyRequestsPagination_SubMicrosecondTimestamps(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()

	seeded := map[uuid.UUID]bool{}
	for _, offset := range []time.Duration{100, 200, 300} {
		seeded[e.seedRequest(owner, eventrequest.StatusPending, offset)] = true
	}

	seen := map[uuid.UUID]bool{}
	var cursor *queries.Cursor
	for page := 0; page < 5; page++ {
		rows, next, err := e.requests.MyRequests(ctx, owner, queries.MyRequestsFilter{Limit: 1, Cursor: cursor})
		require.NoError(t, err)
		for _, r := range rows {
			assert.False(t, seen[r.ID], "request %s listed twice", r.ID)
			seen[r.ID] = true
		}
		if next == nil {
			break
		}
		cursor = next
	}
	assert.Equal(t, seeded, seen)
}

func TestMyRequestsFilters(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()
	e.seedRequest(owner, eventrequest.StatusPending, 0)
	open := e.seedRequest(owner, eventrequest.StatusShowPartnersMembers, time.Minute)

	st := eventrequest.StatusShowPartnersMembers
	views, next, err := e.requests.MyRequests(ctx, owner, queries.MyRequestsFilter{Status: &st})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, open, views[0].ID)
	assert.Nil(t, next)

	_, _, err = e.requests.MyRequests(ctx, owner, queries.MyRequestsFilter{Cursor: &queries.Cursor{After: "not-a-cursor"}})
	assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
}

func TestGetRequestVisibility(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()
	pending := e.seedRequest(owner, eventrequest.StatusPending, 0)
	open := e.seedRequest(owner, eventrequest.StatusShowPartnersMembers, time.Minute)
	prov := e.eligibleProvider()

	tests := []struct {
		name      string
		actor     uuid.UUID
		requestID uuid.UUID
		code      errs.Code
	}{
		{name: "owner sees pending", actor: owner, requestID: pending},
		{name: "owner sees open", actor: owner, requestID: open},
		{name: "provider sees open", actor: prov, requestID: open},
		{name: "provider cannot see pending", actor: prov, requestID: pending, code: errs.CodeForbidden},
		{name: "stranger cannot see open", actor: uuid.New(), requestID: open, code: errs.CodeForbidden},
		{name: "unknown id", actor: owner, requestID: uuid.New(), code: errs.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := e.requests.GetRequest(ctx, tt.actor, tt.requestID)
			if tt.code == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.requestID, detail.ID())
				assert.Equal(t, tt.actor == owner, detail.Full != nil)
				assert.Equal(t, tt.actor != owner, detail.Open != nil)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errs.CodeOf(err))
		})
	}
}

func TestGetRequest_ProviderGetsOpenProjection(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()
	id := e.seedRequest(owner, eventrequest.StatusShowPartnersMembers, 0)
	prov := e.eligibleProvider()
	e.seedProposal(id, prov)

	detail, err := e.requests.GetRequest(ctx, prov, id)

	require.NoError(t, err)
	assert.Nil(t, detail.Full)
	require.NotNil(t, detail.Open)
	assert.Equal(t, id, detail.Open.ID)
	assert.True(t, detail.Open.HasProposed)
	assert.Equal(t, 1, detail.Open.ProposalCount)
}

func TestOpenRequests(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()
	older := e.seedRequest(owner, eventrequest.StatusShowPartnersMembers, 0)
	newer := e.seedRequest(owner, eventrequest.StatusShowPartnersMembers, time.Minute)
	e.seedRequest(owner, eventrequest.StatusUnderReview, 2*time.Minute)

	prov := e.eligibleProvider()
	e.seedProposal(newer, prov)
	e.seedProposal(newer, e.eligibleProvider())

	views, err := e.requests.OpenRequests(ctx, prov)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, older, views[0].ID)
	assert.False(t, views[0].HasProposed)
	assert.Zero(t, views[0].ProposalCount)
	assert.Equal(t, newer, views[1].ID)
	assert.True(t, views[1].HasProposed)
	assert.Equal(t, 2, views[1].ProposalCount)

	_, err = e.requests.OpenRequests(ctx, uuid.New())
	assert.True(t, errs.Is(err, provider.ErrNotEligible))
}

func TestProposalsAccess(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()
	id := e.seedRequest(owner, eventrequest.StatusShowPartnersMembers, 0)
	prov := e.eligibleProvider()
	e.seedProposal(id, prov)

	views, err := e.proposals.Proposals(ctx, id, owner)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, proposal.StatusPending.String(), views[0].Status)

	_, err = e.proposals.Proposals(ctx, id, prov)
	assert.True(t, errs.Is(err, queries.ErrProposalsAccess))

	mine, err := e.proposals.MyProposals(ctx, prov)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, eventrequest.StatusShowPartnersMembers.String(), mine[0].RequestStatus)
	assert.Equal(t, "wedding", mine[0].EventType)
}
