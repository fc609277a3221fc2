package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-customize/internal/domain/user"
	"event-customize/internal/handler/api"
	"event-customize/internal/handler/middleware"
	"event-customize/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	EventRequests *api.EventRequestHandler
	Proposals     *api.ProposalHandler
	Documents     *api.DocumentHandler
	Admin         *api.AdminHandler
}

func NewHandlers(
	eventRequests *api.EventRequestHandler,
	proposals *api.ProposalHandler,
	documents *api.DocumentHandler,
	admin *api.AdminHandler,
) Handlers {
	return Handlers{
		EventRequests: eventRequests,
		Proposals:     proposals,
		Documents:     documents,
		Admin:         admin,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		requests := apiGroup.Group("/event-requests")
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.EventRequests.Create},
			{Method: http.MethodGet, Path: "", Handler: h.EventRequests.ListMine},
			{Method: http.MethodGet, Path: "/open", Handler: h.EventRequests.ListOpen},
			{Method: http.MethodGet, Path: "/:id", Handler: h.EventRequests.Get},
			{Method: http.MethodPost, Path: "/:id/proposals", Handler: h.Proposals.Submit},
			{Method: http.MethodGet, Path: "/:id/proposals", Handler: h.Proposals.ListForRequest},
			{Method: http.MethodPost, Path: "/:id/proposals/:proposalId/accept", Handler: h.Proposals.Accept},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/proposals/mine", Handler: h.Proposals.ListMine},
			{Method: http.MethodPost, Path: "/proposal-documents", Handler: h.Documents.Upload},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{
				Method:  http.MethodPost,
				Path:    "/event-requests/:id/transitions",
				Handler: h.Admin.Transition,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
			},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
