package reservation

import (
	"errors"
	"time"
)

var (
	ErrNotOwner         = errors.New("reservation belongs to another user")
	ErrAlreadyCompleted = errors.New("reservation is already completed")
)

type Reservation struct {
	id        int64
	userID    int64
	spotID    int64
	timeRange TimeRange
	status    Status
}

// NewReservation builds a not-yet-persisted Booked reservation.
func NewReservation(userID, spotID int64, r TimeRange) *Reservation {
	return &Reservation{
		userID:    userID,
		spotID:    spotID,
		timeRange: r,
		status:    StatusBooked,
	}
}

// Reconstruct rebuilds an entity from a persisted row.
func Reconstruct(id, userID, spotID int64, r TimeRange, status Status) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		spotID:    spotID,
		timeRange: r,
		status:    status,
	}
}

func (r *Reservation) ID() int64        { return r.id }
func (r *Reservation) UserID() int64    { return r.userID }
func (r *Reservation) SpotID() int64    { return r.spotID }
func (r *Reservation) Range() TimeRange { return r.timeRange }
func (r *Reservation) Status() Status   { return r.status }

func (r *Reservation) IsBooked() bool {
	return r.status == StatusBooked
}

// HasExpired reports whether the booking window has fully elapsed.
func (r *Reservation) HasExpired(now time.Time) bool {
	return r.timeRange.End().Before(now)
}

// AuthorizeComplete checks the owner-initiated completion preconditions.
// The actual transition is a conditional store update; this only validates
// what a fresh read showed.
func (r *Reservation) AuthorizeComplete(userID int64) error {
	if r.userID != userID {
		return ErrNotOwner
	}
	if r.status != StatusBooked {
		return ErrAlreadyCompleted
	}
	return nil
}
