package commands

import (
	"context"
	"log/slog"
	"time"

	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type notification struct {
	accountID uuid.UUID
	kind      shared.NotificationKind
	payload   map[string]any
}

// notifier fans notifications out after commit. Each delivery runs detached from
// the caller's cancellation under its own timeout; failures are only logged.
type notifier struct {
	dispatcher shared.NotificationDispatcher
	timeout    time.Duration
}

func newNotifier(dispatcher shared.NotificationDispatcher, timeout time.Duration) *notifier {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &notifier{dispatcher: dispatcher, timeout: timeout}
}

func (n *notifier) send(ctx context.Context, batch ...notification) {
	base := context.WithoutCancel(ctx)
	for _, msg := range batch {
		go n.deliver(base, msg)
	}
}

func (n *notifier) deliver(ctx context.Context, msg notification) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.dispatcher.Notify(ctx, msg.accountID, msg.kind, msg.payload); err != nil {
		slog.Warn("notification dispatch failed",
			"kind", string(msg.kind),
			"account_id", msg.accountID.String(),
			"error", err.Error())
	}
}
