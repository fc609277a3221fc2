package commands

//go:generate mockgen -source=proposal.go -destination=../../mock/commands/proposal.go -package=commandsmock

import (
	"context"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/proposal"
	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/config"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotOpen  = errs.Mark(errs.New("event request is not open to providers"), errs.ErrInvalidState)
	ErrNotRequestOwner = errs.Mark(errs.New("only the requester may accept a proposal"), errs.ErrForbidden)
)

type SubmitProposalInput struct {
	RequestID   uuid.UUID
	ProviderID  uuid.UUID
	DocumentRef string
}

type AcceptProposalInput struct {
	RequestID   uuid.UUID
	ProposalID  uuid.UUID
	RequesterID uuid.UUID
}

type AcceptProposalResult struct {
	RequestID           uuid.UUID
	Status              eventrequest.Status
	AcceptedProposalID  uuid.UUID
	RejectedProposalIDs []uuid.UUID
}

type ProposalCommands interface {
	Submit(ctx context.Context, in SubmitProposalInput) (*proposal.Proposal, error)
	Accept(ctx context.Context, in AcceptProposalInput) (*AcceptProposalResult, error)
}

type proposalCommandsImpl struct {
	uow      shared.UnitOfWork
	gate     *provider.Gate
	notifier *notifier
	clock    clock.Clock
}

func NewProposalCommands(
	uow shared.UnitOfWork,
	gate *provider.Gate,
	dispatcher shared.NotificationDispatcher,
	clk clock.Clock,
	cfg config.WorkflowConfig,
) ProposalCommands {
	return &proposalCommandsImpl{
		uow:      uow,
		gate:     gate,
		notifier: newNotifier(dispatcher, cfg.NotifyTimeout),
		clock:    clk,
	}
}

// Submit runs every guard and the insert under the request lock, so two racing
// submissions from one provider cannot both pass the duplicate check.
func (uc *proposalCommandsImpl) Submit(ctx context.Context, in SubmitProposalInput) (*proposal.Proposal, error) {
	ref, err := proposal.NewDocumentRef(in.DocumentRef)
	if err != nil {
		return nil, err
	}
	if in.ProviderID == uuid.Nil {
		return nil, proposal.ErrMissingProvider
	}

	var (
		created *proposal.Proposal
		ownerID uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.EventRequests().LockByID(ctx, in.RequestID)
		if derr != nil {
			return derr
		}
		if !req.Status().AcceptsProposals() {
			return ErrRequestNotOpen
		}

		profile, derr := uc.gate.Using(tx.ProviderProfiles()).Admit(ctx, in.ProviderID)
		if derr != nil {
			return derr
		}

		exists, derr := tx.Proposals().ExistsForProvider(ctx, req.ID(), in.ProviderID)
		if derr != nil {
			return derr
		}
		if exists {
			return proposal.ErrDuplicateSubmission
		}

		p, derr := proposal.NewProposal(uc.clock, req.ID(), profile.Snapshot(), ref, req.ProposalCount()+1)
		if derr != nil {
			return derr
		}
		if derr := tx.Proposals().Create(ctx, p); derr != nil {
			return derr
		}
		req.AppendProposal(p.ID())

		created = p
		ownerID = req.OwnerID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.send(ctx, notification{
		accountID: ownerID,
		kind:      shared.NotifyProposalReceived,
		payload: map[string]any{
			"request_id":    created.RequestID().String(),
			"proposal_id":   created.ID().String(),
			"provider_name": created.Provider().Name,
		},
	})
	return created, nil
}

// Accept settles the request in one transaction: the winner, every pending loser
// and the request status flip commit together or not at all.
func (uc *proposalCommandsImpl) Accept(ctx context.Context, in AcceptProposalInput) (*AcceptProposalResult, error) {
	var settlement *proposal.Settlement
	result := &AcceptProposalResult{RequestID: in.RequestID}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settlement = nil
		req, derr := tx.EventRequests().LockByID(ctx, in.RequestID)
		if derr != nil {
			return derr
		}
		if !req.IsOwnedBy(in.RequesterID) {
			return ErrNotRequestOwner
		}
		if req.Status() != eventrequest.StatusShowPartnersMembers {
			return ErrRequestNotOpen
		}

		proposals, derr := tx.Proposals().ListByRequest(ctx, req.ID())
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		s, derr := proposal.Settle(proposals, in.ProposalID, now)
		if derr != nil {
			return derr
		}
		if derr := tx.Proposals().UpdateStatus(ctx, s.Accepted); derr != nil {
			return derr
		}
		for _, p := range s.Rejected {
			if derr := tx.Proposals().UpdateStatus(ctx, p); derr != nil {
				return derr
			}
		}

		prev, derr := req.Apply(eventrequest.EventProposalAccepted, nil, now)
		if derr != nil {
			return derr
		}
		if derr := tx.EventRequests().UpdateStatus(ctx, req, prev); derr != nil {
			return derr
		}

		settlement = s
		result.Status = req.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.AcceptedProposalID = settlement.Accepted.ID()
	batch := []notification{
		{
			accountID: settlement.Accepted.ProviderID(),
			kind:      shared.NotifyProposalAccepted,
			payload: map[string]any{
				"request_id":  in.RequestID.String(),
				"proposal_id": settlement.Accepted.ID().String(),
			},
		},
		{
			accountID: in.RequesterID,
			kind:      shared.NotifyAcceptanceConfirmed,
			payload: map[string]any{
				"request_id":    in.RequestID.String(),
				"proposal_id":   settlement.Accepted.ID().String(),
				"provider_name": settlement.Accepted.Provider().Name,
			},
		},
	}
	for _, p := range settlement.Rejected {
		result.RejectedProposalIDs = append(result.RejectedProposalIDs, p.ID())
		batch = append(batch, notification{
			accountID: p.ProviderID(),
			kind:      shared.NotifyProposalRejected,
			payload: map[string]any{
				"request_id":  in.RequestID.String(),
				"proposal_id": p.ID().String(),
			},
		})
	}
	uc.notifier.send(ctx, batch...)

	return result, nil
}
