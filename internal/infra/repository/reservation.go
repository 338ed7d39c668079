package repository

import (
	"context"
	"errors"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const findOverlappingBookedSQL = `
SELECT id, user_id, spot_id, start_time, end_time, status
FROM reservations
WHERE spot_id = $1
  AND status = 'Booked'
  AND start_time < $3
  AND end_time > $2
FOR UPDATE`

// FindOverlappingBooked runs inside the caller's transaction so the
// FOR UPDATE locks survive until commit. A lock_timeout set on the
// transaction bounds how long this blocks behind a competing booking.
func (r *ReservationRepository) FindOverlappingBooked(ctx context.Context, tx db.DBTX, spotID int64, tr reservation.TimeRange) ([]*reservation.Reservation, error) {
	rows, err := tx.Query(ctx, findOverlappingBookedSQL, spotID, tr.Start(), tr.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping reservations", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

const insertReservationSQL = `
INSERT INTO reservations (user_id, spot_id, start_time, end_time, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *ReservationRepository) Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertReservationSQL,
		res.UserID(), res.SpotID(), res.Range().Start(), res.Range().End(), res.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return id, nil
}

const findReservationByIDSQL = `
SELECT id, user_id, spot_id, start_time, end_time, status
FROM reservations
WHERE id = $1`

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row := r.pool.QueryRow(ctx, findReservationByIDSQL, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

const completeByOwnerSQL = `
UPDATE reservations
SET status = 'Completed'
WHERE id = $1 AND user_id = $2 AND status = 'Booked'`

// CompleteByOwner relies on the WHERE guard instead of a lock: if the
// row changed hands or status since it was read, zero rows match.
func (r *ReservationRepository) CompleteByOwner(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, completeByOwnerSQL, id, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

const completeExpiredSQL = `
UPDATE reservations
SET status = 'Completed'
WHERE id = $1 AND status = 'Booked'`

func (r *ReservationRepository) CompleteExpired(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, completeExpiredSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

const findStaleBookedSQL = `
SELECT id, user_id, spot_id, start_time, end_time, status
FROM reservations
WHERE status = 'Booked' AND end_time < $1
ORDER BY id`

func (r *ReservationRepository) FindStaleBooked(ctx context.Context, before time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.pool.Query(ctx, findStaleBookedSQL, before)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query stale reservations", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, userID, spotID int64
		start, end         time.Time
		status             string
	)
	if err := row.Scan(&id, &userID, &spotID, &start, &end, &status); err != nil {
		return nil, err
	}

	tr, err := reservation.NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(id, userID, spotID, tr, reservation.Status(status)), nil
}

func scanReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return out, nil
}
