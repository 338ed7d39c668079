package components

import (
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/usecase"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewAuthCommands,
			fx.As(new(usecase.AuthUseCase)),
		),
		fx.Annotate(
			commands.NewReservationCommands,
			fx.As(new(usecase.ReservationCommandUseCase)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			queries.NewReservationQueries,
			fx.As(new(usecase.ReservationQueryUseCase)),
		),
		fx.Annotate(
			queries.NewSpotQueries,
			fx.As(new(usecase.SpotQueryUseCase)),
		),
		fx.Annotate(
			queries.NewStatsQueries,
			fx.As(new(usecase.StatsQueryUseCase)),
		),
	),
)
