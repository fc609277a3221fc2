package api

import (
	"net/http"

	reqdto "event-customize/internal/handler/dto/request"
	resdto "event-customize/internal/handler/dto/response"
	"event-customize/internal/handler/httperr"
	"event-customize/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.EventRequestCommands
}

func NewAdminHandler(cmds commands.EventRequestCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Apply an administrative transition
// @Description Move an event request along one admin edge: AdminReview, AdminApprove, AdminReject, AdminOpenToProviders, AdminForceReject.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event request ID"
// @Param request body reqdto.TransitionRequest true "Transition"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/event-requests/{id}/transitions [post]
func (h *AdminHandler) Transition(c *gin.Context) {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Transition(c.Request.Context(), commands.TransitionInput{
		RequestID: requestID,
		Event:     req.Event,
		AdminID:   a.ID,
		Note:      req.NoteOrEmpty(),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}
