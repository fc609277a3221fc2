//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	queriesmock "event-customize/internal/mock/queries"
	"event-customize/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMyRequests_FetchesOneExtraRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockEventRequestReadStore(ctrl)
	q := queries.NewEventRequestQueries(store, nil)

	owner := uuid.New()
	rows := []*queries.EventRequestView{
		{ID: uuid.New(), CreatedAt: baseTime.Add(2 * time.Microsecond)},
		{ID: uuid.New(), CreatedAt: baseTime.Add(time.Microsecond)},
		{ID: uuid.New(), CreatedAt: baseTime},
	}
	store.EXPECT().FindByOwner(gomock.Any(), owner, nil, nil, 3).Return(rows, nil)

	got, next, err := q.MyRequests(context.Background(), owner, queries.MyRequestsFilter{Limit: 2})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	require.NotNil(t, next)
	createdAt, id, err := queries.DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, rows[1].ID, id)
	assert.True(t, rows[1].CreatedAt.Equal(createdAt))
}

func TestMyRequests_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockEventRequestReadStore(ctrl)
	q := queries.NewEventRequestQueries(store, nil)

	boom := errors.New("connection reset")
	store.EXPECT().FindByOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 21).Return(nil, boom)

	_, _, err := q.MyRequests(context.Background(), uuid.New(), queries.MyRequestsFilter{})

	assert.ErrorIs(t, err, boom)
}

func TestProposals_NonOwnerNeverReadsProposals(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := queriesmock.NewMockEventRequestReadStore(ctrl)
	proposals := queriesmock.NewMockProposalReadStore(ctrl)
	q := queries.NewProposalQueries(requests, proposals)

	requestID := uuid.New()
	requests.EXPECT().FindByID(gomock.Any(), requestID).
		Return(&queries.EventRequestView{ID: requestID, OwnerID: uuid.New()}, nil)
	proposals.EXPECT().FindByRequest(gomock.Any(), gomock.Any()).Times(0)

	_, err := q.Proposals(context.Background(), requestID, uuid.New())

	assert.ErrorIs(t, err, queries.ErrProposalsAccess)
}

func TestMyProposals_DelegatesToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposals := queriesmock.NewMockProposalReadStore(ctrl)
	q := queries.NewProposalQueries(queriesmock.NewMockEventRequestReadStore(ctrl), proposals)

	providerID := uuid.New()
	want := []*queries.MyProposalView{{RequestStatus: "accepted"}}
	proposals.EXPECT().FindByProvider(gomock.Any(), providerID).Return(want, nil)

	got, err := q.MyProposals(context.Background(), providerID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
