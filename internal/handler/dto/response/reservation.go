package response

import (
	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	SpotID    int64  `json:"spot_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

func FromReservationView(v queries.ReservationView) ReservationResponse {
	return ReservationResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		SpotID:    v.SpotID,
		StartTime: v.StartTime.Format(reservation.WireTimeLayout),
		EndTime:   v.EndTime.Format(reservation.WireTimeLayout),
		Status:    v.Status,
	}
}

func FromReservationEntity(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        res.ID(),
		UserID:    res.UserID(),
		SpotID:    res.SpotID(),
		StartTime: res.Range().Start().Format(reservation.WireTimeLayout),
		EndTime:   res.Range().End().Format(reservation.WireTimeLayout),
		Status:    res.Status().String(),
	}
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

func FromReservationViews(views []queries.ReservationView) ReservationListResponse {
	out := make([]ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return ReservationListResponse{Reservations: out}
}
