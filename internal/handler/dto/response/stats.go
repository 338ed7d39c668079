package response

import "smart-parking/internal/usecase/queries"

type HourOccupancyResponse struct {
	Hour      int32 `json:"hour"`
	Occupancy int64 `json:"occupancy"`
}

type StatsResponse struct {
	PeakOccupancyHours []HourOccupancyResponse `json:"peak_occupancy_hours"`
}

func FromHourOccupancy(rows []queries.HourOccupancy) StatsResponse {
	hours := make([]HourOccupancyResponse, len(rows))
	for i, r := range rows {
		hours[i] = HourOccupancyResponse{Hour: r.Hour, Occupancy: r.Occupancy}
	}
	return StatsResponse{PeakOccupancyHours: hours}
}
