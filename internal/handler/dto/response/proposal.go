package response

import (
	"time"

	"event-customize/internal/domain/proposal"
	"event-customize/internal/usecase/commands"
	"event-customize/internal/usecase/queries"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProposalResponse struct {
	ID            uuid.UUID `json:"id"`
	RequestID     uuid.UUID `json:"request_id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	DocumentRef   string    `json:"document_ref"`
	Status        string    `json:"status"`
	Position      int       `json:"position"`
	SubmittedAt   time.Time `json:"submitted_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromProposalViews(views []*queries.ProposalView) []*ProposalResponse {
	res := make([]*ProposalResponse, 0, len(views))
	_ = copier.CopyWithOption(&res, &views, copier.Option{DeepCopy: true})
	return res
}

type MyProposalResponse struct {
	ProposalResponse
	RequestStatus string `json:"request_status"`
	EventType     string `json:"event_type"`
}

func FromMyProposalViews(views []*queries.MyProposalView) []*MyProposalResponse {
	res := make([]*MyProposalResponse, len(views))
	for i, v := range views {
		item := &MyProposalResponse{
			RequestStatus: v.RequestStatus,
			EventType:     v.EventType,
		}
		_ = copier.Copy(&item.ProposalResponse, &v.ProposalView)
		res[i] = item
	}
	return res
}

type SubmitProposalResponse struct {
	ProposalID uuid.UUID `json:"proposal_id"`
	RequestID  uuid.UUID `json:"request_id"`
	Status     string    `json:"status"`
	Position   int       `json:"position"`
}

func FromSubmittedProposal(p *proposal.Proposal) *SubmitProposalResponse {
	return &SubmitProposalResponse{
		ProposalID: p.ID(),
		RequestID:  p.RequestID(),
		Status:     p.Status().String(),
		Position:   p.Position(),
	}
}

type AcceptProposalResponse struct {
	RequestID           uuid.UUID   `json:"request_id"`
	Status              string      `json:"status"`
	AcceptedProposalID  uuid.UUID   `json:"accepted_proposal_id"`
	RejectedProposalIDs []uuid.UUID `json:"rejected_proposal_ids"`
}

func FromAcceptResult(r *commands.AcceptProposalResult) *AcceptProposalResponse {
	rejected := r.RejectedProposalIDs
	if rejected == nil {
		rejected = []uuid.UUID{}
	}
	return &AcceptProposalResponse{
		RequestID:           r.RequestID,
		Status:              r.Status.String(),
		AcceptedProposalID:  r.AcceptedProposalID,
		RejectedProposalIDs: rejected,
	}
}

type UploadDocumentResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func FromUploadResult(r *shared.UploadResult) *UploadDocumentResponse {
	return &UploadDocumentResponse{Key: r.Key, URL: r.URL}
}
