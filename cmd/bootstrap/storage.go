package bootstrap

import (
	"context"

	"event-customize/internal/infra/storage"
	"event-customize/internal/pkg/config"
	"event-customize/internal/usecase/shared"

	"go.uber.org/fx"
)

func StorageModule(cfg config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return fx.Module("storage",
			fx.Provide(
				fx.Annotate(
					func(cfg config.Config) *storage.MemoryStore { return storage.NewMemoryStore(cfg.Storage.Prefix) },
					fx.As(new(shared.ObjectStorage)),
				),
			),
		)
	}
	return fx.Module("storage",
		fx.Provide(
			fx.Annotate(
				NewS3Store,
				fx.As(new(shared.ObjectStorage)),
			),
		),
	)
}

func NewS3Store(cfg config.Config) (*storage.S3Store, error) {
	return storage.NewS3Store(context.Background(), storage.S3Config{
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		Endpoint:      cfg.Storage.Endpoint,
		Prefix:        cfg.Storage.Prefix,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
}
