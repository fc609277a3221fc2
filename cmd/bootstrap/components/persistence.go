package components

import (
	"context"
	"log/slog"

	"event-customize/internal/domain/provider"
	"event-customize/internal/infra/ledger"
	"event-customize/internal/infra/memstore"
	"event-customize/internal/infra/query"
	"event-customize/internal/infra/readstore"
	"event-customize/internal/infra/uow"
	"event-customize/internal/pkg/config"
	"event-customize/internal/usecase/queries"
	"event-customize/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewQueries,
		NewDBTX,
		uow.NewPostgresUoW,
		func(u *uow.PostgresUoW) shared.UnitOfWork { return u },
		// Read side
		fx.Annotate(
			func(q *query.Queries) *query.Queries { return q },
			fx.As(new(readstore.EventRequestViewQueries)),
			fx.As(new(readstore.ProposalViewQueries)),
			fx.As(new(readstore.ProviderProfileQueries)),
		),
		fx.Annotate(
			readstore.NewEventRequestReadStore,
			fx.As(new(queries.EventRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewProposalReadStore,
			fx.As(new(queries.ProposalReadStore)),
		),
		fx.Annotate(
			readstore.NewProviderProfileReader,
			fx.As(new(provider.ProfileReader)),
		),
		// Ledger
		fx.Annotate(
			func(u *uow.PostgresUoW, q *query.Queries) *ledger.PostgresLedger {
				return ledger.NewPostgresLedger(u, q)
			},
			fx.As(new(shared.LedgerGateway)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		memstore.NewUnitOfWork,
		ledger.NewMemoryLedger,
		func(l *ledger.MemoryLedger) shared.LedgerGateway { return l },
		func(s *memstore.Store) queries.EventRequestReadStore { return s },
		func(s *memstore.Store) queries.ProposalReadStore { return s },
		func(s *memstore.Store) provider.ProfileReader { return s },
	),
	fx.Invoke(applyMemorySeed),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func applyMemorySeed(cfg config.Config, store *memstore.Store, l *ledger.MemoryLedger) error {
	if cfg.Store.SeedFile == "" {
		slog.Warn("memory store started without seed; every wallet is empty")
		return nil
	}
	seed, err := memstore.LoadSeed(cfg.Store.SeedFile)
	if err != nil {
		return err
	}
	if err := seed.Apply(context.Background(), store, l); err != nil {
		return err
	}
	slog.Info("memory store seeded", "wallets", len(seed.Wallets), "providers", len(seed.Providers))
	return nil
}
