package api

import (
	"net/http"

	reqdto "event-customize/internal/handler/dto/request"
	resdto "event-customize/internal/handler/dto/response"
	"event-customize/internal/handler/httperr"
	"event-customize/internal/usecase/commands"
	"event-customize/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	cmds commands.ProposalCommands
	q    queries.ProposalQueries
}

func NewProposalHandler(cmds commands.ProposalCommands, q queries.ProposalQueries) *ProposalHandler {
	return &ProposalHandler{cmds: cmds, q: q}
}

// @Summary Submit proposal
// @Description Submit a proposal document for an open event request. One proposal per provider and request.
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event request ID"
// @Param request body reqdto.SubmitProposalRequest true "Proposal"
// @Success 201 {object} resdto.SubmitProposalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/event-requests/{id}/proposals [post]
func (h *ProposalHandler) Submit(c *gin.Context) {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	p, err := h.cmds.Submit(c.Request.Context(), commands.SubmitProposalInput{
		RequestID:   requestID,
		ProviderID:  a.ID,
		DocumentRef: req.DocumentRef,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmittedProposal(p))
}

// @Summary List proposals of an event request
// @Description Only the request owner can see the proposals.
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event request ID"
// @Success 200 {array} resdto.ProposalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/event-requests/{id}/proposals [get]
func (h *ProposalHandler) ListForRequest(c *gin.Context) {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.Proposals(c.Request.Context(), requestID, a.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposalViews(views))
}

// @Summary Accept proposal
// @Description Accept one proposal; every other pending proposal of the request is rejected atomically.
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event request ID"
// @Param proposalId path string true "Proposal ID"
// @Success 200 {object} resdto.AcceptProposalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/event-requests/{id}/proposals/{proposalId}/accept [post]
func (h *ProposalHandler) Accept(c *gin.Context) {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	proposalID, ok := pathUUID(c, "proposalId")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}

	result, err := h.cmds.Accept(c.Request.Context(), commands.AcceptProposalInput{
		RequestID:   requestID,
		ProposalID:  proposalID,
		RequesterID: a.ID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcceptResult(result))
}

// @Summary List my proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MyProposalResponse
// @Router /api/proposals/mine [get]
func (h *ProposalHandler) ListMine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.MyProposals(c.Request.Context(), a.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMyProposalViews(views))
}
