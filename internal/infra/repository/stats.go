package repository

import (
	"context"

	"smart-parking/internal/infra"
	"smart-parking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsReadStore struct {
	pool *pgxpool.Pool
}

func NewStatsReadStore(pool *pgxpool.Pool) *StatsReadStore {
	return &StatsReadStore{pool: pool}
}

// Every hour 0-23 appears in the result, zero-count hours included.
// A reservation touches hour h when its time-of-day window overlaps
// [h:00, h+1:00); dates are ignored so the ranking aggregates across
// all days.
const occupancyByHourSQL = `
SELECT h.hour, COUNT(r.id) AS occupancy
FROM generate_series(0, 23) AS h(hour)
LEFT JOIN reservations r
  ON r.start_time::time::interval < make_interval(hours => h.hour + 1)
 AND r.end_time::time::interval   > make_interval(hours => h.hour)
GROUP BY h.hour
ORDER BY occupancy DESC, h.hour ASC`

func (r *StatsReadStore) OccupancyByHour(ctx context.Context) ([]queries.HourOccupancy, error) {
	rows, err := r.pool.Query(ctx, occupancyByHourSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupancy by hour", err)
	}
	defer rows.Close()

	var out []queries.HourOccupancy
	for rows.Next() {
		var v queries.HourOccupancy
		if err := rows.Scan(&v.Hour, &v.Occupancy); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupancy rows", err)
	}
	return out, nil
}
