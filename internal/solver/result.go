package solver

import (
	"context"
	"fmt"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// routeColors is the display palette, cycled by position among used vehicles.
var routeColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E9", "#F8C471", "#82E0AA",
}

// buildResult converts the final solution into per-vehicle ordered stop
// sequences with cumulative load tracking and route geometry.
func (s *Solver) buildResult(ctx context.Context, sol *Solution) *domain.OptimizationResult {
	spotsByID := make(map[string]domain.PickupSpot, len(s.spots))
	for _, sp := range s.spots {
		spotsByID[sp.ID] = sp
	}

	var routes []domain.OptimizedRoute
	usedIdx := 0

	for _, v := range s.vehicles {
		spotIDs := s.distinctSpots(sol, v.ID)
		if len(spotIDs) == 0 {
			continue
		}

		// Workers per spot, grouped in first-encounter order.
		workers := make(map[string]int, len(spotIDs))
		for _, a := range sol.Assignments {
			if a.VehicleID == v.ID {
				workers[a.SpotID] += a.Workers
			}
		}

		stops := make([]domain.RouteStop, 0, len(spotIDs))
		cumulative := 0
		for order, id := range spotIDs {
			sp := spotsByID[id]
			cumulative += workers[id]
			stops = append(stops, domain.RouteStop{
				SpotID:         sp.ID,
				SpotName:       sp.Name,
				Location:       sp.Location,
				WorkerCount:    workers[id],
				ArrivalOrder:   order + 1,
				CumulativeLoad: cumulative,
				PickupDetails:  fmt.Sprintf("Picked up %d workers", workers[id]),
			})
		}

		routeDistance := s.routeDistance(spotIDs)
		totalWorkers := cumulative

		segments := s.routeSegments(ctx, stops)
		totalDuration := 0.0
		for _, seg := range segments {
			totalDuration += seg.DurationMinutes
		}

		routes = append(routes, domain.OptimizedRoute{
			VehicleID:            v.ID,
			VehicleName:          v.Name,
			VehicleCategory:      v.Category,
			Stops:                stops,
			TotalDistanceKm:      routeDistance,
			TotalCost:            routeDistance * v.CostPerKm,
			UtilizationPercent:   float64(totalWorkers) / float64(v.Capacity) * 100,
			RouteColor:           routeColors[usedIdx%len(routeColors)],
			TotalDurationMinutes: totalDuration,
			MaxPassengers:        totalWorkers,
			Segments:             segments,
		})
		usedIdx++
	}

	// Spots whose demand was not fully placed are reported rather than
	// silently dropped.
	unassigned := []string{}
	for _, sp := range s.spots {
		if sol.spotAssigned(sp.ID) < sp.WorkerCount {
			unassigned = append(unassigned, sp.ID)
		}
	}

	return &domain.OptimizationResult{
		Routes:          routes,
		TotalDistance:   sol.TotalDistance,
		TotalCost:       sol.TotalCost,
		VehiclesUsed:    sol.VehiclesUsed,
		UnassignedSpots: unassigned,
	}
}

// routeSegments asks the geometry provider for the drivable path through
// factory -> stops -> factory. When road geometry is unavailable (provider
// missing, disabled, or failing) it synthesizes straight-line segments with
// durations estimated at the configured fallback speed.
func (s *Solver) routeSegments(ctx context.Context, stops []domain.RouteStop) []domain.RouteSegment {
	if len(stops) == 0 {
		return nil
	}

	points := make([]domain.Coordinates, 0, len(stops)+2)
	points = append(points, s.factory.Location)
	for _, stop := range stops {
		points = append(points, stop.Location)
	}
	points = append(points, s.factory.Location)

	if s.opts.UseRealRoads && s.geometry != nil {
		geo, err := s.geometry.RouteGeometry(ctx, points)
		if err == nil && len(geo.Waypoints) > 0 {
			return []domain.RouteSegment{{
				From:            points[0],
				To:              points[len(points)-1],
				DistanceKm:      geo.DistanceKm,
				DurationMinutes: geo.DurationMin,
				Waypoints:       geo.Waypoints,
				Steps:           geo.Steps,
			}}
		}
		if err != nil {
			s.log.Printf("solver: route geometry unavailable, using straight segments: %v", err)
		}
	}

	segments := make([]domain.RouteSegment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		from, to := points[i], points[i+1]
		d := from.DistanceKm(to)
		segments = append(segments, domain.RouteSegment{
			From:            from,
			To:              to,
			DistanceKm:      d,
			DurationMinutes: d / s.opts.FallbackSpeedKmh * 60,
			Waypoints:       [][]float64{from.LonLat(), to.LonLat()},
		})
	}
	return segments
}
