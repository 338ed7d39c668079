package components

import (
	"smart-parking/internal/infra/notifier"
	repo_impl "smart-parking/internal/infra/repository"
	"smart-parking/internal/infra/uow"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewSpotRepository,
			fx.As(new(commands.SpotRepository)),
		),
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(commands.UnitOfWork)),
		),
		fx.Annotate(
			notifier.NewRedisChangeNotifier,
			fx.As(new(commands.ChangeNotifier)),
		),
		// Read-side stores for queries
		fx.Annotate(
			repo_impl.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			repo_impl.NewSpotRepository,
			fx.As(new(queries.SpotReadStore)),
		),
		fx.Annotate(
			repo_impl.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) *uow.PostgresUnitOfWork {
	return uow.NewPostgresUnitOfWork(pool, cfg.DB.LockTimeout)
}
