package commands

import (
	"context"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/spot"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/usecase/queries"
)

type ReservationRepository interface {
	// FindOverlappingBooked locks and returns every Booked reservation on
	// the spot whose window overlaps r. Callers must hold a transaction;
	// the row locks pin the spot's schedule until commit.
	FindOverlappingBooked(ctx context.Context, tx db.DBTX, spotID int64, r reservation.TimeRange) ([]*reservation.Reservation, error)
	Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	// CompleteByOwner flips Booked to Completed only if the row still
	// belongs to userID and is still Booked. Returns false when no row
	// matched the guard.
	CompleteByOwner(ctx context.Context, id, userID int64) (bool, error)
	// CompleteExpired is the sweeper variant: same status guard, no
	// ownership check.
	CompleteExpired(ctx context.Context, id int64) (bool, error)
	FindStaleBooked(ctx context.Context, before time.Time) ([]*reservation.Reservation, error)
}

type SpotRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*spot.ParkingSpot, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

// UnitOfWork runs fn inside a database transaction. Retryable failures
// (serialization, deadlock) re-run fn from scratch, so fn must be
// side-effect free outside the transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

// ChangeNotifier publishes reservation change events for downstream
// relays. Delivery is best effort; the state change has already
// committed by the time this is called.
type ChangeNotifier interface {
	NotifyChange(ctx context.Context, change reservation.ChangeKind, view queries.ReservationView) error
}
