package distance

import (
	"context"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// HaversineProvider computes straight-line great-circle distances with no
// network access. Used when real-road routing is disabled and as the offline
// fallback inside the OSRM provider.
type HaversineProvider struct{}

func (HaversineProvider) Distance(_ context.Context, a, b domain.Coordinates) (float64, error) {
	return a.DistanceKm(b), nil
}
