package queries

import (
	"context"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/pkg/errs"
)

type SpotReadStore interface {
	ListAll(ctx context.Context) ([]SpotView, error)
}

type SpotQueries struct {
	store SpotReadStore
}

func NewSpotQueries(store SpotReadStore) *SpotQueries {
	return &SpotQueries{store: store}
}

type SpotCatalog struct {
	Spots       []SpotView
	SlotWindows []reservation.SlotWindow
}

// Catalog returns every spot plus the fixed booking windows clients
// may offer as presets.
func (q *SpotQueries) Catalog(ctx context.Context) (*SpotCatalog, error) {
	spots, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list parking spots")
	}

	return &SpotCatalog{
		Spots:       spots,
		SlotWindows: reservation.DailySlotWindows(),
	}, nil
}
