package notify

import (
	"context"
	"fmt"

	"event-customize/internal/pkg/clock"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
	rd "github.com/redis/go-redis/v9"
)

// streamMaxLen bounds the stream if the relay falls behind; trimming is approximate.
const streamMaxLen = 100_000

type RedisDispatcher struct {
	rdb    rd.Cmdable
	stream string
	clock  clock.Clock
}

func NewRedisDispatcher(rdb rd.Cmdable, stream string, clk clock.Clock) *RedisDispatcher {
	return &RedisDispatcher{rdb: rdb, stream: stream, clock: clk}
}

var _ shared.NotificationDispatcher = (*RedisDispatcher)(nil)

func (d *RedisDispatcher) Notify(ctx context.Context, accountID uuid.UUID, kind shared.NotificationKind, payload map[string]any) error {
	values, err := encodeMessage(accountID, kind, payload, d.clock.Now())
	if err != nil {
		return err
	}
	err = d.rdb.XAdd(ctx, &rd.XAddArgs{
		Stream: d.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", d.stream, err)
	}
	return nil
}
