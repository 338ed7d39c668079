package repository

import (
	"context"
	"errors"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/infra"
	"smart-parking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpotRepository struct {
	pool *pgxpool.Pool
}

func NewSpotRepository(pool *pgxpool.Pool) *SpotRepository {
	return &SpotRepository{pool: pool}
}

const spotExistsSQL = `SELECT EXISTS (SELECT 1 FROM parking_spots WHERE id = $1)`

func (r *SpotRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, spotExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check parking spot", err)
	}
	return exists, nil
}

const findSpotByIDSQL = `
SELECT id, spot_number, floor_number, spot_type
FROM parking_spots
WHERE id = $1`

func (r *SpotRepository) FindByID(ctx context.Context, id int64) (*spot.ParkingSpot, error) {
	var (
		spotID      int64
		spotNumber  int32
		floorNumber int32
		spotType    string
	)
	err := r.pool.QueryRow(ctx, findSpotByIDSQL, id).Scan(&spotID, &spotNumber, &floorNumber, &spotType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("parking spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking spot", err)
	}
	return spot.NewParkingSpot(spotID, spotNumber, floorNumber, spotType)
}

const listSpotsSQL = `
SELECT id, spot_number, floor_number, spot_type
FROM parking_spots
ORDER BY spot_number`

func (r *SpotRepository) ListAll(ctx context.Context) ([]queries.SpotView, error) {
	rows, err := r.pool.Query(ctx, listSpotsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking spots", err)
	}
	defer rows.Close()

	var out []queries.SpotView
	for rows.Next() {
		var v queries.SpotView
		if err := rows.Scan(&v.ID, &v.SpotNumber, &v.FloorNumber, &v.SpotType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan parking spot row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read parking spot rows", err)
	}
	return out, nil
}
