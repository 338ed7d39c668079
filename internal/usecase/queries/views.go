package queries

import "time"

// ReservationView is the read-side projection of a reservation. The
// same shape feeds API responses and change-event payloads.
type ReservationView struct {
	ID        int64
	UserID    int64
	SpotID    int64
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

type SpotView struct {
	ID          int64
	SpotNumber  int32
	FloorNumber int32
	SpotType    string
}

// HourOccupancy counts reservations whose window touches the given
// hour of day (0-23), across all dates.
type HourOccupancy struct {
	Hour      int32
	Occupancy int64
}
