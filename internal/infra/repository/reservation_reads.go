package repository

import (
	"context"
	"time"

	"smart-parking/internal/infra"
	"smart-parking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const listBookedByDateSQL = `
SELECT id, user_id, spot_id, start_time, end_time, status
FROM reservations
WHERE status = 'Booked'
  AND start_time >= $1
  AND start_time < $2
ORDER BY spot_id, start_time`

// ListBookedByDate projects the active schedule for one calendar day:
// every Booked reservation starting within [midnight, next midnight)
// in the date's location.
func (r *ReservationReadStore) ListBookedByDate(ctx context.Context, date time.Time) ([]queries.ReservationView, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, listBookedByDateSQL, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}
	defer rows.Close()

	var out []queries.ReservationView
	for rows.Next() {
		var v queries.ReservationView
		if err := rows.Scan(&v.ID, &v.UserID, &v.SpotID, &v.StartTime, &v.EndTime, &v.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation views", err)
	}
	return out, nil
}
