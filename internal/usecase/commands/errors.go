package commands

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUnknownSpot            = errors.New("parking spot does not exist")
	ErrSlotUnavailable        = errors.New("spot is already booked for this time slot")
	ErrNotFound               = errors.New("reservation not found")
	ErrForbidden              = errors.New("reservation belongs to another user")
	ErrAlreadyCompleted       = errors.New("reservation is already completed")
	ErrConcurrentModification = errors.New("reservation was modified concurrently")
	ErrLockTimeout            = errors.New("could not acquire reservation lock in time")
)
