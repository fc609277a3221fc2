package bootstrap

import (
	"context"
	"log/slog"

	"event-customize/internal/infra/notify"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/config"
	"event-customize/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	rd "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func NotifyModule(cfg config.Config) fx.Option {
	if cfg.Notify.Driver == config.NotifyDriverLog {
		return fx.Module("notify",
			fx.Provide(
				fx.Annotate(
					notify.NewLogDispatcher,
					fx.As(new(shared.NotificationDispatcher)),
				),
			),
		)
	}

	opts := []fx.Option{
		RedisModule,
		fx.Provide(
			fx.Annotate(
				func(rdb *rd.Client, cfg config.Config, clk clock.Clock) *notify.RedisDispatcher {
					return notify.NewRedisDispatcher(rdb, cfg.Notify.Stream, clk)
				},
				fx.As(new(shared.NotificationDispatcher)),
			),
		),
	}
	// The outbox table lives in PostgreSQL; without it nothing drains the stream here.
	if cfg.Store.Driver == config.StoreDriverPostgres {
		opts = append(opts, fx.Invoke(startRelay))
	}
	return fx.Module("notify", opts...)
}

func startRelay(lc fx.Lifecycle, rdb *rd.Client, pool *pgxpool.Pool, q *query.Queries, cfg config.Config) {
	relay := notify.NewRelay(rdb, notify.NewPostgresJobSink(q, pool),
		cfg.Notify.Stream, cfg.Notify.Group, cfg.Notify.Consumer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			slog.Info("notification relay started", "stream", cfg.Notify.Stream, "group", cfg.Notify.Group)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
