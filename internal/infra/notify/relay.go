package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"

	rd "github.com/redis/go-redis/v9"
)

// JobSink persists one stream entry. Implementations must be idempotent on streamID
// because an entry is redelivered until it is acknowledged.
type JobSink interface {
	Enqueue(ctx context.Context, streamID string, msg Message) error
}

// Relay acknowledges a stream entry only after the sink accepted it; failed
// entries stay pending and are retried from the consumer's backlog first.
type Relay struct {
	rdb  *rd.Client
	sink JobSink

	stream   string
	group    string
	consumer string
}

func NewRelay(rdb *rd.Client, sink JobSink, stream, group, consumer string) *Relay {
	return &Relay{
		rdb:      rdb,
		sink:     sink,
		stream:   stream,
		group:    group,
		consumer: consumer,
	}
}

func (r *Relay) Run(ctx context.Context) {
	if err := r.ensureGroup(ctx); err != nil {
		slog.Error("notification relay: ensure group failed", "error", err.Error())
		return
	}

	for {
		if ctx.Err() != nil {
			return
		}

		msgs, err := r.readGroup(ctx, "0", 0)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			slog.Warn("notification relay: read pending failed", "error", err.Error())
			sleep(ctx, 300*time.Millisecond)
			continue
		}
		if len(msgs) == 0 {
			msgs, err = r.readGroup(ctx, ">", 2*time.Second)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				slog.Warn("notification relay: read new failed", "error", err.Error())
				sleep(ctx, 300*time.Millisecond)
				continue
			}
		}

		for _, xm := range msgs {
			if err := r.processOne(ctx, xm); err != nil {
				slog.Warn("notification relay: process failed", "stream_id", xm.ID, "error", err.Error())
				sleep(ctx, 200*time.Millisecond)
				break
			}
		}
	}
}

func (r *Relay) ensureGroup(ctx context.Context) error {
	err := r.rdb.XGroupCreateMkStream(ctx, r.stream, r.group, "0").Err()
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "BUSYGROUP") {
		return nil
	}
	return err
}

func (r *Relay) readGroup(ctx context.Context, streamID string, block time.Duration) ([]rd.XMessage, error) {
	streams, err := r.rdb.XReadGroup(ctx, &rd.XReadGroupArgs{
		Group:    r.group,
		Consumer: r.consumer,
		Streams:  []string{r.stream, streamID},
		Count:    16,
		Block:    block,
		NoAck:    false,
	}).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]rd.XMessage, 0, 16)
	for _, s := range streams {
		out = append(out, s.Messages...)
	}
	return out, nil
}

func (r *Relay) processOne(ctx context.Context, xm rd.XMessage) error {
	msg, err := parseMessage(xm.Values)
	if err != nil {
		// Malformed entries can never succeed; drop them so they do not block the backlog.
		slog.Warn("notification relay: dropping malformed entry", "stream_id", xm.ID, "error", err.Error())
		if ackErr := r.ackAndDelete(ctx, xm.ID); ackErr != nil {
			return fmt.Errorf("parse failed: %v, ack failed: %w", err, ackErr)
		}
		return nil
	}

	sinkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.sink.Enqueue(sinkCtx, xm.ID, msg); err != nil {
		return err
	}
	return r.ackAndDelete(ctx, xm.ID)
}

func (r *Relay) ackAndDelete(ctx context.Context, id string) error {
	pipe := r.rdb.TxPipeline()
	pipe.XAck(ctx, r.stream, r.group, id)
	pipe.XDel(ctx, r.stream, id)
	_, err := pipe.Exec(ctx)
	return err
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

type NotificationJobQueries interface {
	InsertNotificationJob(ctx context.Context, db query.DBTX, arg query.InsertNotificationJobParams) (int64, error)
}

// PostgresJobSink writes stream entries into the notification_jobs outbox.
type PostgresJobSink struct {
	queries NotificationJobQueries
	db      query.DBTX
}

func NewPostgresJobSink(queries NotificationJobQueries, db query.DBTX) *PostgresJobSink {
	return &PostgresJobSink{queries: queries, db: db}
}

func (s *PostgresJobSink) Enqueue(ctx context.Context, streamID string, msg Message) error {
	_, err := s.queries.InsertNotificationJob(ctx, s.db, query.InsertNotificationJobParams{
		StreamID:  streamID,
		AccountID: msg.AccountID,
		Kind:      string(msg.Kind),
		Payload:   msg.Payload,
		RunAt:     pgconv.TimeToPgtype(msg.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification job", err)
	}
	return nil
}
