// Package usecase defines the application-facing contracts the HTTP
// layer and workers consume. Implementations live in the commands and
// queries subpackages.
package usecase

import (
	"context"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"
)

type AuthUseCase interface {
	Login(ctx context.Context, creds user.Credentials) (commands.LoginResult, error)
}

type ReservationCommandUseCase interface {
	Create(ctx context.Context, userID, spotID int64, r reservation.TimeRange) (*reservation.Reservation, error)
	Complete(ctx context.Context, id, userID int64) (*reservation.Reservation, error)
	ReleaseExpired(ctx context.Context) (int, error)
}

type ReservationQueryUseCase interface {
	ListBookedByDate(ctx context.Context, date time.Time) ([]queries.ReservationView, error)
}

type SpotQueryUseCase interface {
	Catalog(ctx context.Context) (*queries.SpotCatalog, error)
}

type StatsQueryUseCase interface {
	PeakOccupancyHours(ctx context.Context) ([]queries.HourOccupancy, error)
}
