package queries

import (
	"context"

	"smart-parking/internal/pkg/errs"
)

type StatsReadStore interface {
	OccupancyByHour(ctx context.Context) ([]HourOccupancy, error)
}

type StatsQueries struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) *StatsQueries {
	return &StatsQueries{store: store}
}

// PeakOccupancyHours ranks all 24 hours of the day by how many
// reservations (past or active) touched them, busiest first.
func (q *StatsQueries) PeakOccupancyHours(ctx context.Context) ([]HourOccupancy, error) {
	rows, err := q.store.OccupancyByHour(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to compute occupancy stats")
	}
	return rows, nil
}
