package spot

import "errors"

var ErrInvalidSpotNumber = errors.New("spot number must be positive")

// ParkingSpot is immutable reference data provisioned out of band;
// the reservation core only ever reads it.
type ParkingSpot struct {
	id          int64
	spotNumber  int32
	floorNumber int32
	spotType    string
}

func NewParkingSpot(id int64, spotNumber, floorNumber int32, spotType string) (*ParkingSpot, error) {
	if spotNumber <= 0 {
		return nil, ErrInvalidSpotNumber
	}
	return &ParkingSpot{
		id:          id,
		spotNumber:  spotNumber,
		floorNumber: floorNumber,
		spotType:    spotType,
	}, nil
}

func (s *ParkingSpot) ID() int64          { return s.id }
func (s *ParkingSpot) SpotNumber() int32  { return s.spotNumber }
func (s *ParkingSpot) FloorNumber() int32 { return s.floorNumber }
func (s *ParkingSpot) Type() string       { return s.spotType }
