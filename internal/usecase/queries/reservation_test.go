//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadStore struct {
	mock.Mock
}

func (m *MockReservationReadStore) ListBookedByDate(ctx context.Context, date time.Time) ([]queries.ReservationView, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ReservationView), args.Error(1)
}

func TestListBookedByDate_DefaultsToToday(t *testing.T) {
	store := &MockReservationReadStore{}
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	q := queries.NewReservationQueries(store, clock.NewMockClock(now))
	ctx := context.Background()

	store.On("ListBookedByDate", ctx, now).Return([]queries.ReservationView{}, nil)

	_, err := q.ListBookedByDate(ctx, time.Time{})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestListBookedByDate_PassesExplicitDate(t *testing.T) {
	store := &MockReservationReadStore{}
	q := queries.NewReservationQueries(store, clock.NewMockClock(time.Now()))
	ctx := context.Background()

	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	want := []queries.ReservationView{{ID: 1, Status: "Booked"}}
	store.On("ListBookedByDate", ctx, date).Return(want, nil)

	got, err := q.ListBookedByDate(ctx, date)

	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected views (-want +got):\n%s", diff)
	}
}

func TestListBookedByDate_PropagatesStoreError(t *testing.T) {
	store := &MockReservationReadStore{}
	q := queries.NewReservationQueries(store, clock.NewMockClock(time.Now()))
	ctx := context.Background()

	store.On("ListBookedByDate", ctx, mock.Anything).Return(nil, assert.AnError)

	_, err := q.ListBookedByDate(ctx, time.Time{})

	assert.Error(t, err)
}
