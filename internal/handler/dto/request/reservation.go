package request

import "smart-parking/internal/domain/reservation"

type CreateReservationRequest struct {
	SpotID    int64  `json:"spot_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) ToTimeRange() (reservation.TimeRange, error) {
	return reservation.ParseTimeRange(r.StartTime, r.EndTime)
}
