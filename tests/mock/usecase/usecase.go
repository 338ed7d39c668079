//go:build unit || e2e

// Package usecasemock provides hand-written testify mocks for the
// usecase contracts consumed by the HTTP layer and workers.
package usecasemock

import (
	"context"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, creds user.Credentials) (commands.LoginResult, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(commands.LoginResult), args.Error(1)
}

type MockReservationCommandUseCase struct {
	mock.Mock
}

func (m *MockReservationCommandUseCase) Create(ctx context.Context, userID, spotID int64, r reservation.TimeRange) (*reservation.Reservation, error) {
	args := m.Called(ctx, userID, spotID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationCommandUseCase) Complete(ctx context.Context, id, userID int64) (*reservation.Reservation, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationCommandUseCase) ReleaseExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockReservationQueryUseCase struct {
	mock.Mock
}

func (m *MockReservationQueryUseCase) ListBookedByDate(ctx context.Context, date time.Time) ([]queries.ReservationView, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ReservationView), args.Error(1)
}

type MockSpotQueryUseCase struct {
	mock.Mock
}

func (m *MockSpotQueryUseCase) Catalog(ctx context.Context) (*queries.SpotCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.SpotCatalog), args.Error(1)
}

type MockStatsQueryUseCase struct {
	mock.Mock
}

func (m *MockStatsQueryUseCase) PeakOccupancyHours(ctx context.Context) ([]queries.HourOccupancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.HourOccupancy), args.Error(1)
}
