package bootstrap

import (
	"event-customize/cmd/bootstrap/components"
	"event-customize/internal/pkg/config"

	"go.uber.org/fx"
)

func NewModule(cfg config.Config) fx.Option {
	persistence := components.MemoryPersistenceModule
	if cfg.Store.Driver == config.StoreDriverPostgres {
		persistence = fx.Options(DBModule, components.PostgresPersistenceModule)
	}

	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		persistence,
		StorageModule(cfg),
		NotifyModule(cfg),
		components.UseCaseModule,
		components.HandlerModule,
	)
}
