package components

import (
	"event-customize/internal/handler"
	"event-customize/internal/handler/api"
	"event-customize/internal/handler/middleware"
	"event-customize/internal/pkg/config"
	"event-customize/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventRequestHandler,
		api.NewProposalHandler,
		func(cmds commands.DocumentCommands, cfg config.Config) *api.DocumentHandler {
			return api.NewDocumentHandler(cmds, cfg.Storage.MaxUploadSize)
		},
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
