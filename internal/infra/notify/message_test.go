//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeThenParse(t *testing.T) {
	accountID := uuid.New()
	now := time.Date(2026, 5, 1, 9, 30, 15, 0, time.UTC)

	values, err := encodeMessage(accountID, shared.NotifyProposalAccepted, map[string]any{"request_id": "r-1"}, now)
	require.NoError(t, err)

	msg, err := parseMessage(values)
	require.NoError(t, err)
	assert.Equal(t, accountID, msg.AccountID)
	assert.Equal(t, shared.NotifyProposalAccepted, msg.Kind)
	assert.Equal(t, now, msg.CreatedAt)
	assert.JSONEq(t, `{"request_id":"r-1"}`, string(msg.Payload))
}

func TestParseMessageAcceptsRedisValueTypes(t *testing.T) {
	msg, err := parseMessage(map[string]interface{}{
		"account_id": []byte(uuid.NewString()),
		"kind":       "request_submitted",
		"payload":    []byte(`{}`),
		"created_at": int64(1767225600000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1767225600000), msg.CreatedAt.UnixMilli())
}

func TestParseMessageRejectsMalformedEntries(t *testing.T) {
	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"account_id": uuid.NewString(),
			"kind":       "request_submitted",
			"payload":    `{"a":1}`,
			"created_at": "1767225600000",
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{name: "missing account", mutate: func(m map[string]interface{}) { delete(m, "account_id") }},
		{name: "bad account", mutate: func(m map[string]interface{}) { m["account_id"] = "nope" }},
		{name: "empty kind", mutate: func(m map[string]interface{}) { m["kind"] = "" }},
		{name: "payload not json", mutate: func(m map[string]interface{}) { m["payload"] = "{" }},
		{name: "bad timestamp", mutate: func(m map[string]interface{}) { m["created_at"] = "yesterday" }},
		{name: "unsupported type", mutate: func(m map[string]interface{}) { m["kind"] = 3.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := valid()
			tt.mutate(values)
			_, err := parseMessage(values)
			assert.Error(t, err)
		})
	}
}

type recordingJobQueries struct {
	got query.InsertNotificationJobParams
	err error
}

func (r *recordingJobQueries) InsertNotificationJob(_ context.Context, _ query.DBTX, arg query.InsertNotificationJobParams) (int64, error) {
	r.got = arg
	return 1, r.err
}

func TestPostgresJobSink(t *testing.T) {
	msg := Message{
		AccountID: uuid.New(),
		Kind:      shared.NotifyRequestSubmitted,
		Payload:   json.RawMessage(`{"charge":50}`),
		CreatedAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("inserts one job per stream entry", func(t *testing.T) {
		q := &recordingJobQueries{}
		sink := NewPostgresJobSink(q, nil)

		require.NoError(t, sink.Enqueue(context.Background(), "1767225600000-0", msg))
		assert.Equal(t, "1767225600000-0", q.got.StreamID)
		assert.Equal(t, msg.AccountID, q.got.AccountID)
		assert.Equal(t, string(msg.Kind), q.got.Kind)
		assert.True(t, q.got.RunAt.Valid)
		assert.Equal(t, msg.CreatedAt, q.got.RunAt.Time)
	})

	t.Run("wraps database failures", func(t *testing.T) {
		sink := NewPostgresJobSink(&recordingJobQueries{err: errors.New("connection refused")}, nil)
		err := sink.Enqueue(context.Background(), "1-0", msg)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
