//go:build unit

package commands_test

import (
	"context"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/spot"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindOverlappingBooked(ctx context.Context, tx db.DBTX, spotID int64, r reservation.TimeRange) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, tx, spotID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error) {
	args := m.Called(ctx, tx, res)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CompleteByOwner(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) CompleteExpired(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) FindStaleBooked(ctx context.Context, before time.Time) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSpotRepository) FindByID(ctx context.Context, id int64) (*spot.ParkingSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spot.ParkingSpot), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// MockUnitOfWork runs the callback inline without a real transaction.
// When FailWith is set the callback is skipped and the error returned,
// mimicking a Begin/lock failure.
type MockUnitOfWork struct {
	FailWith error
}

func (m *MockUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return fn(ctx, nil)
}

type MockChangeNotifier struct {
	mock.Mock
}

func (m *MockChangeNotifier) NotifyChange(ctx context.Context, change reservation.ChangeKind, view queries.ReservationView) error {
	args := m.Called(ctx, change, view)
	return args.Error(0)
}
