package response

import (
	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID          int64  `json:"id"`
	SpotNumber  int32  `json:"spot_number"`
	FloorNumber int32  `json:"floor_number"`
	SpotType    string `json:"type"`
}

type SpotCatalogResponse struct {
	Spots       []SpotResponse           `json:"spots"`
	SlotWindows []reservation.SlotWindow `json:"slot_windows"`
}

func FromSpotCatalog(catalog *queries.SpotCatalog) (SpotCatalogResponse, error) {
	spots := make([]SpotResponse, 0, len(catalog.Spots))
	if err := copier.Copy(&spots, &catalog.Spots); err != nil {
		return SpotCatalogResponse{}, err
	}
	return SpotCatalogResponse{
		Spots:       spots,
		SlotWindows: catalog.SlotWindows,
	}, nil
}
