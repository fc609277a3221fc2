package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertNotificationJob = `
INSERT INTO notification_jobs (stream_id, account_id, kind, payload, run_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (stream_id) DO NOTHING`

type InsertNotificationJobParams struct {
	StreamID  string
	AccountID uuid.UUID
	Kind      string
	Payload   []byte
	RunAt     pgtype.Timestamptz
}

// InsertNotificationJob is keyed by the stream entry id, so redelivered entries insert once.
func (q *Queries) InsertNotificationJob(ctx context.Context, db DBTX, arg InsertNotificationJobParams) (int64, error) {
	tag, err := db.Exec(ctx, insertNotificationJob, arg.StreamID, arg.AccountID, arg.Kind, arg.Payload, arg.RunAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
