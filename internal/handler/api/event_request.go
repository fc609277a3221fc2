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

type EventRequestHandler struct {
	cmds commands.EventRequestCommands
	q    queries.EventRequestQueries
}

func NewEventRequestHandler(cmds commands.EventRequestCommands, q queries.EventRequestQueries) *EventRequestHandler {
	return &EventRequestHandler{cmds: cmds, q: q}
}

// @Summary Create event request
// @Description Submit a customization request. The request charge is debited before the request is stored.
// @Tags event-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID that makes client retries safe"
// @Param request body reqdto.CreateEventRequestRequest true "Event details"
// @Success 201 {object} resdto.CreateEventRequestResponse
// @Success 200 {object} resdto.CreateEventRequestResponse "Replayed idempotent request"
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/event-requests [post]
func (h *EventRequestHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	key, err := reqdto.ParseIdempotencyKey(c.GetHeader("Idempotency-Key"))
	if err != nil {
		httperr.BadRequest(c, err, "Idempotency-Key must be a UUID")
		return
	}

	var req reqdto.CreateEventRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	details, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateRequest(c.Request.Context(), commands.CreateRequestInput{
		RequesterID:    a.ID,
		Details:        details,
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/event-requests/"+result.Request.ID.String())
	c.JSON(status, resdto.FromCreateResult(result))
}

// @Summary List my event requests
// @Description Newest first, keyset paginated
// @Tags event-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.EventRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/event-requests [get]
func (h *EventRequestHandler) ListMine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.ListMyRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	status, err := query.StatusFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	filter := queries.MyRequestsFilter{Status: status, Limit: query.Limit}
	if query.Cursor != "" {
		filter.Cursor = &queries.Cursor{After: query.Cursor}
	}
	views, next, err := h.q.MyRequests(c.Request.Context(), a.ID, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventRequestList(views, next))
}

// @Summary List open event requests
// @Description Requests currently open to partners and members. Eligible providers only.
// @Tags event-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OpenRequestResponse
// @Failure 403 {object} httperr.Response
// @Router /api/event-requests/open [get]
func (h *EventRequestHandler) ListOpen(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.OpenRequests(c.Request.Context(), a.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpenRequests(views))
}

// @Summary Get event request
// @Tags event-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event request ID"
// @Success 200 {object} resdto.EventRequestResponse "Owner view"
// @Success 200 {object} resdto.OpenRequestResponse "Provider view of an open request"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/event-requests/{id} [get]
func (h *EventRequestHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	detail, err := h.q.GetRequest(c.Request.Context(), a.ID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestDetail(detail))
}
