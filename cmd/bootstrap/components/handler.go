package components

import (
	"smart-parking/internal/handler"
	"smart-parking/internal/handler/api"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewReservationHandler,
		api.NewStatsHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
