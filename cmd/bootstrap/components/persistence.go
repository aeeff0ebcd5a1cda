package components

import (
	"parking-system/internal/infra/repository"
	sqlc "parking-system/internal/infra/sqlc/generated"
	"parking-system/internal/infra/uow"
	"parking-system/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Spot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SpotQueries)),
		),
		fx.Annotate(
			repository.NewSpotRepository,
			fx.As(new(shared.SpotStore)),
		),
		// Ticket
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.TicketQueries)),
		),
		fx.Annotate(
			repository.NewTicketRepository,
			fx.As(new(shared.TicketStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
