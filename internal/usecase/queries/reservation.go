package queries

import (
	"context"
	"time"

	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
)

type ReservationReadStore interface {
	ListBookedByDate(ctx context.Context, date time.Time) ([]ReservationView, error)
}

type ReservationQueries struct {
	store ReservationReadStore
	clk   clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) *ReservationQueries {
	return &ReservationQueries{store: store, clk: clk}
}

// ListBookedByDate returns active reservations starting on the given
// calendar day. A zero date means today.
func (q *ReservationQueries) ListBookedByDate(ctx context.Context, date time.Time) ([]ReservationView, error) {
	if date.IsZero() {
		date = q.clk.Now()
	}

	views, err := q.store.ListBookedByDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return views, nil
}
