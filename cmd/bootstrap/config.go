package bootstrap

import (
	"event-customize/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded configuration; drivers are chosen
// from it before the graph is built.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(cfg config.Config) config.WorkflowConfig { return cfg.Workflow },
		),
	)
}
