// Package notify hands workflow notifications to the outbound mail service.
// The dispatcher appends to a Redis stream and returns; the relay drains the
// stream into the notification_jobs table the mail service polls.
package notify

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type Message struct {
	AccountID uuid.UUID
	Kind      shared.NotificationKind
	Payload   json.RawMessage
	CreatedAt time.Time
}

func encodeMessage(accountID uuid.UUID, kind shared.NotificationKind, payload map[string]any, now time.Time) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode notification payload: %w", err)
	}
	return map[string]any{
		"account_id": accountID.String(),
		"kind":       string(kind),
		"payload":    string(body),
		"created_at": strconv.FormatInt(now.UnixMilli(), 10),
	}, nil
}

func parseMessage(values map[string]interface{}) (Message, error) {
	accountStr, err := getStreamString(values, "account_id")
	if err != nil {
		return Message{}, err
	}
	kind, err := getStreamString(values, "kind")
	if err != nil {
		return Message{}, err
	}
	payload, err := getStreamString(values, "payload")
	if err != nil {
		return Message{}, err
	}
	createdStr, err := getStreamString(values, "created_at")
	if err != nil {
		return Message{}, err
	}

	accountID, err := uuid.Parse(accountStr)
	if err != nil {
		return Message{}, fmt.Errorf("invalid account_id %q", accountStr)
	}
	if kind == "" {
		return Message{}, fmt.Errorf("empty kind")
	}
	if !json.Valid([]byte(payload)) {
		return Message{}, fmt.Errorf("payload is not valid JSON")
	}
	createdMs, err := strconv.ParseInt(createdStr, 10, 64)
	if err != nil {
		return Message{}, fmt.Errorf("invalid created_at %q", createdStr)
	}

	return Message{
		AccountID: accountID,
		Kind:      shared.NotificationKind(kind),
		Payload:   json.RawMessage(payload),
		CreatedAt: time.UnixMilli(createdMs).UTC(),
	}, nil
}

func getStreamString(values map[string]interface{}, key string) (string, error) {
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing field %s", key)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	default:
		return "", fmt.Errorf("unsupported field type %s: %T", key, v)
	}
}
