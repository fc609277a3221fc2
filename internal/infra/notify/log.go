package notify

import (
	"context"
	"log/slog"

	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

// LogDispatcher only logs; it backs the log notify driver used in development.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

var _ shared.NotificationDispatcher = (*LogDispatcher)(nil)

func (d *LogDispatcher) Notify(ctx context.Context, accountID uuid.UUID, kind shared.NotificationKind, payload map[string]any) error {
	d.logger.InfoContext(ctx, "notification",
		"account_id", accountID.String(),
		"kind", string(kind),
		"payload", payload)
	return nil
}
