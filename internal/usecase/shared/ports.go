package shared

import (
	"context"

	"event-customize/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInsufficientBalance = errs.Mark(errs.New("ledger declined charge: balance too low"), errs.ErrInsufficientBalance)

// LedgerGateway owns requester balances. reference identifies the business
// operation; a repeated Charge or Refund with the same reference is a no-op.
type LedgerGateway interface {
	Charge(ctx context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error
	Refund(ctx context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error
}

type UploadResult struct {
	Key string
	URL string
}

// ObjectStorage stores proposal documents. The returned URL is what a proposal keeps as its document reference.
type ObjectStorage interface {
	Upload(ctx context.Context, data []byte, contentType string) (*UploadResult, error)
}

type NotificationKind string

const (
	NotifyRequestSubmitted     NotificationKind = "request_submitted"
	NotifyRequestStatusChanged NotificationKind = "request_status_changed"
	NotifyProposalReceived     NotificationKind = "proposal_received"
	NotifyProposalAccepted     NotificationKind = "proposal_accepted"
	NotifyProposalRejected     NotificationKind = "proposal_rejected"
	NotifyAcceptanceConfirmed  NotificationKind = "acceptance_confirmed"
)

// NotificationDispatcher is best-effort: the workflow never waits on it to commit.
type NotificationDispatcher interface {
	Notify(ctx context.Context, accountID uuid.UUID, kind NotificationKind, payload map[string]any) error
}
