package components

import (
	"log/slog"

	"foodshare-api/internal/infra/memstore"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/infra/readstore"
	"foodshare-api/internal/infra/uow"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		query.New,
		NewDBTX,
		uow.NewPostgresUoW,
		// Donation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DonationReadQueries)),
		),
		fx.Annotate(
			readstore.NewDonationReadStore,
			fx.As(new(queries.DonationReadStore)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(shared.UserDirectory)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		memstore.NewUoW,
		fx.Annotate(
			memstore.NewDonationReadStore,
			fx.As(new(queries.DonationReadStore)),
		),
		fx.Annotate(
			memstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			memstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(shared.UserDirectory)),
		),
	),
)

func NewSQLQueries() *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

// NewMemoryStore loads STORE_SEED_FILE when set. Without it nobody can log in.
func NewMemoryStore(cfg config.Config, clk clock.Clock) (*memstore.Store, error) {
	store := memstore.New()
	if cfg.Store.SeedFile == "" {
		slog.Warn("memory store started without a seed file")
		return store, nil
	}
	n, err := store.SeedFile(cfg.Store.SeedFile, clk.Now())
	if err != nil {
		return nil, err
	}
	slog.Info("memory store seeded", "users", n, "file", cfg.Store.SeedFile)
	return store, nil
}
