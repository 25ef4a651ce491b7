package ports

import (
	"context"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// Contract for retrieving travel distance between two geographic points.
type DistanceProvider interface {
	// Return the travel distance in kilometers between two points.
	Distance(ctx context.Context, a, b domain.Coordinates) (float64, error)
}

// RouteGeometry is the drivable path through an ordered point sequence.
type RouteGeometry struct {
	DistanceKm  float64
	DurationMin float64
	Waypoints   [][]float64 // [lon, lat] pairs along the road network
	Steps       []domain.RouteStep
}

// Optional extension for providers that can return road geometry and
// turn-by-turn steps for a multi-stop route.
type RouteGeometryProvider interface {
	// Return the road geometry through the given ordered points.
	RouteGeometry(ctx context.Context, points []domain.Coordinates) (RouteGeometry, error)
}
