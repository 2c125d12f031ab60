package components

import (
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/infra/readstore"
	"booth-booking/internal/infra/uow"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(clock.NewRealClock),
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booth
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BoothReadQueries)),
		),
		fx.Annotate(
			readstore.NewBoothReadStore,
			fx.As(new(queries.BoothReader)),
		),
		// Occupancy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OccupancyReadQueries)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReader)),
		),
		// Guest list
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GuestReadQueries)),
		),
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestReader)),
		),
	),
)

// Write-side repositories and command reads are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
