package components

import (
	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/config"
	"event-customize/internal/usecase"
	"event-customize/internal/usecase/commands"
	"event-customize/internal/usecase/queries"
	"event-customize/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	provider.NewGate,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEventRequestCommands,
		commands.NewProposalCommands,
		func(storage shared.ObjectStorage, gate *provider.Gate, cfg config.Config) commands.DocumentCommands {
			return commands.NewDocumentCommands(storage, gate, cfg.Storage.MaxUploadSize)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventRequestQueries,
		queries.NewProposalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
