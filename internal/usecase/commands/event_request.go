package commands

//go:generate mockgen -source=event_request.go -destination=../../mock/commands/event_request.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/config"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/usecase/queries"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

const createRequestEndpoint = "POST /api/event-requests"

var (
	ErrIdempotencyKeyReused  = errs.Mark(errs.New("idempotency key was used with a different payload"), errs.ErrValidation)
	ErrIdempotencyInProgress = errs.Mark(errs.New("event request with this idempotency key is still processing"), errs.ErrIdempotencyInProgress)
	ErrLedgerUnavailable     = errs.New("ledger did not confirm the charge")
	ErrNotAdminEvent         = errs.Mark(errs.New("event cannot be applied by an administrator"), errs.ErrValidation)
	ErrMissingAdmin          = errs.Mark(errs.New("admin id is required"), errs.ErrValidation)
)

type CreateRequestInput struct {
	RequesterID    uuid.UUID
	Details        eventrequest.DetailsInput
	IdempotencyKey *uuid.UUID
}

type CreateRequestResult struct {
	Request    *queries.EventRequestView
	IsReplayed bool
}

type TransitionInput struct {
	RequestID uuid.UUID
	Event     string
	AdminID   uuid.UUID
	Note      string
}

type TransitionResult struct {
	RequestID           uuid.UUID
	From                eventrequest.Status
	To                  eventrequest.Status
	RejectedProposalIDs []uuid.UUID
}

type EventRequestCommands interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (*CreateRequestResult, error)
	Transition(ctx context.Context, in TransitionInput) (*TransitionResult, error)
}

type eventRequestCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   shared.LedgerGateway
	queries  queries.EventRequestQueries
	notifier *notifier
	clock    clock.Clock
	cfg      config.WorkflowConfig
}

func NewEventRequestCommands(
	uow shared.UnitOfWork,
	ledger shared.LedgerGateway,
	requestQueries queries.EventRequestQueries,
	dispatcher shared.NotificationDispatcher,
	clk clock.Clock,
	cfg config.WorkflowConfig,
) EventRequestCommands {
	return &eventRequestCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		queries:  requestQueries,
		notifier: newNotifier(dispatcher, cfg.NotifyTimeout),
		clock:    clk,
		cfg:      cfg,
	}
}

// CreateRequest charges the requester and persists the request. Either both happen
// or neither does: any failure after the charge was attempted issues a refund keyed
// by the same reference.
func (c *eventRequestCommandsImpl) CreateRequest(ctx context.Context, in CreateRequestInput) (*CreateRequestResult, error) {
	details, err := eventrequest.NewDetails(in.Details)
	if err != nil {
		return nil, err
	}
	if in.RequesterID == uuid.Nil {
		return nil, eventrequest.ErrMissingOwner
	}

	if in.IdempotencyKey != nil {
		replayed, err := c.claimIdempotencyKey(ctx, *in.IdempotencyKey, in.RequesterID, c.requestHash(in.Details))
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CreateRequestResult{Request: replayed, IsReplayed: true}, nil
		}
	}

	requestID := uuid.New()
	if err := c.charge(ctx, in.RequesterID, requestID); err != nil {
		c.releaseIdempotencyKey(ctx, in.IdempotencyKey, in.RequesterID)
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := eventrequest.NewEventRequest(c.clock, requestID, in.RequesterID, details, c.cfg.RequestCharge)
		if derr != nil {
			return derr
		}
		if derr := tx.EventRequests().Create(ctx, req); derr != nil {
			return derr
		}
		if in.IdempotencyKey != nil {
			return tx.Idempotency().Complete(ctx, *in.IdempotencyKey, in.RequesterID, requestID)
		}
		return nil
	})
	if err != nil {
		c.refund(ctx, in.RequesterID, requestID)
		c.releaseIdempotencyKey(ctx, in.IdempotencyKey, in.RequesterID)
		return nil, errs.Wrap(err, "persist event request")
	}

	view, err := c.queries.GetByIDSystem(ctx, requestID)
	if err != nil {
		return nil, errs.Wrap(err, "read created event request")
	}

	c.notifier.send(ctx, notification{
		accountID: in.RequesterID,
		kind:      shared.NotifyRequestSubmitted,
		payload: map[string]any{
			"request_id": requestID.String(),
			"event_type": details.DisplayType(),
			"charge":     c.cfg.RequestCharge,
		},
	})

	return &CreateRequestResult{Request: view}, nil
}

func (c *eventRequestCommandsImpl) claimIdempotencyKey(ctx context.Context, key, userID uuid.UUID, requestHash string) (*queries.EventRequestView, error) {
	var existing *shared.IdempotencyRecord
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, claimed, derr := tx.Idempotency().Claim(ctx, shared.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Endpoint:    createRequestEndpoint,
			RequestHash: requestHash,
			Status:      shared.IdempotencyStatusProcessing,
			ExpiresAt:   c.clock.Now().Add(c.cfg.IdempotencyTTL),
		})
		if derr != nil {
			return derr
		}
		if !claimed {
			existing = rec
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "claim idempotency key")
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultRequestID == nil {
			return nil, errs.New("completed idempotency key has no result request")
		}
		return c.queries.GetByIDSystem(ctx, *existing.ResultRequestID)
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (c *eventRequestCommandsImpl) releaseIdempotencyKey(ctx context.Context, key *uuid.UUID, userID uuid.UUID) {
	if key == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, *key, userID)
	})
	if err != nil {
		slog.Error("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

func (c *eventRequestCommandsImpl) charge(ctx context.Context, requesterID, reference uuid.UUID) error {
	chargeCtx, cancel := context.WithTimeout(ctx, c.cfg.LedgerTimeout)
	defer cancel()

	err := c.ledger.Charge(chargeCtx, requesterID, c.cfg.RequestCharge, reference)
	if err == nil {
		return nil
	}
	if errs.Is(err, errs.ErrInsufficientBalance) {
		return err
	}

	// Outcome unknown: the debit may have landed after we stopped waiting.
	c.refund(ctx, requesterID, reference)
	return errs.Mark(errs.Wrap(err, "ledger charge"), ErrLedgerUnavailable)
}

func (c *eventRequestCommandsImpl) refund(ctx context.Context, requesterID, reference uuid.UUID) {
	refundCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.LedgerTimeout)
	defer cancel()

	if err := c.ledger.Refund(refundCtx, requesterID, c.cfg.RequestCharge, reference); err != nil {
		slog.Error("compensating refund failed",
			"reference", reference.String(),
			"account_id", requesterID.String(),
			"error", err.Error())
	}
}

func (c *eventRequestCommandsImpl) requestHash(in eventrequest.DetailsInput) string {
	data, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Transition applies one administrative edge under the request lock.
func (c *eventRequestCommandsImpl) Transition(ctx context.Context, in TransitionInput) (*TransitionResult, error) {
	ev, err := eventrequest.ParseEvent(in.Event)
	if err != nil {
		return nil, err
	}
	if !ev.IsAdmin() {
		return nil, ErrNotAdminEvent
	}
	if in.AdminID == uuid.Nil {
		return nil, ErrMissingAdmin
	}

	var (
		result  *TransitionResult
		ownerID uuid.UUID
		closed  []*proposal.Proposal
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		closed = nil
		req, derr := tx.EventRequests().LockByID(ctx, in.RequestID)
		if derr != nil {
			return derr
		}

		now := c.clock.Now()
		prev, derr := req.Apply(ev, &eventrequest.AdminAction{AdminID: in.AdminID, Note: in.Note}, now)
		if derr != nil {
			return derr
		}
		if derr := tx.EventRequests().UpdateStatus(ctx, req, prev); derr != nil {
			return derr
		}

		if ev == eventrequest.EventAdminForceReject && c.cfg.OrphanProposals != config.OrphanPolicyKeep {
			proposals, derr := tx.Proposals().ListByRequest(ctx, req.ID())
			if derr != nil {
				return derr
			}
			closed = proposal.RejectPending(proposals, now)
			for _, p := range closed {
				if derr := tx.Proposals().UpdateStatus(ctx, p); derr != nil {
					return derr
				}
			}
		}

		ownerID = req.OwnerID()
		result = &TransitionResult{RequestID: req.ID(), From: prev, To: req.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	batch := []notification{{
		accountID: ownerID,
		kind:      shared.NotifyRequestStatusChanged,
		payload: map[string]any{
			"request_id": result.RequestID.String(),
			"from":       result.From.String(),
			"to":         result.To.String(),
		},
	}}
	for _, p := range closed {
		result.RejectedProposalIDs = append(result.RejectedProposalIDs, p.ID())
		batch = append(batch, notification{
			accountID: p.ProviderID(),
			kind:      shared.NotifyProposalRejected,
			payload: map[string]any{
				"request_id":  result.RequestID.String(),
				"proposal_id": p.ID().String(),
			},
		})
	}
	c.notifier.send(ctx, batch...)

	return result, nil
}
