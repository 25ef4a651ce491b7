package solver

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

// Options tunes a single optimization run. The zero value selects the
// reference defaults.
type Options struct {
	// UseRealRoads requests road geometry from the geometry provider for the
	// final routes. Distances themselves always come from the distance
	// provider handed to New.
	UseRealRoads bool
	// Iterations is the ALNS iteration budget (default 100).
	Iterations int
	// VehiclePenalty is the fitness penalty added per vehicle used, in the
	// same unit as cost-per-km (default 1000).
	VehiclePenalty float64
	// FallbackSpeedKmh estimates segment durations when no road geometry is
	// available (default 40).
	FallbackSpeedKmh float64
	// Seed fixes the random source for the ALNS destroy operators.
	// Zero means time-based seeding; tests pass an explicit seed.
	Seed int64
	// Logger receives progress and warning lines. Nil means log.Default().
	Logger *log.Logger
}

const (
	defaultIterations     = 100
	defaultVehiclePenalty = 1000.0
	defaultFallbackSpeed  = 40.0
)

// Solver runs one optimization over a fixed factory, fleet, and spot set.
// It owns a precomputed distance matrix and holds no other mutable state
// across runs: each invocation of Solve starts from a fresh greedy solution.
type Solver struct {
	factory  domain.Factory
	vehicles []domain.Vehicle    // sorted ascending by cost per km
	spots    []domain.PickupSpot // original input order
	matrix   distanceMatrix
	geometry ports.RouteGeometryProvider
	rng      *rand.Rand
	log      *log.Logger
	opts     Options
}

// New precomputes the distance matrix and prepares a solver. The distance
// provider is consulted exactly once per unordered point pair and never again
// during the search. geometry may be nil, in which case routes fall back to
// straight-line segments.
func New(
	ctx context.Context,
	factory domain.Factory,
	vehicles []domain.Vehicle,
	spots []domain.PickupSpot,
	provider ports.DistanceProvider,
	geometry ports.RouteGeometryProvider,
	opts Options,
) (*Solver, error) {
	if opts.Iterations <= 0 {
		opts.Iterations = defaultIterations
	}
	if opts.VehiclePenalty <= 0 {
		opts.VehiclePenalty = defaultVehiclePenalty
	}
	if opts.FallbackSpeedKmh <= 0 {
		opts.FallbackSpeedKmh = defaultFallbackSpeed
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sorted := slices.Clone(vehicles)
	slices.SortStableFunc(sorted, func(a, b domain.Vehicle) int {
		switch {
		case a.CostPerKm < b.CostPerKm:
			return -1
		case a.CostPerKm > b.CostPerKm:
			return 1
		}
		return 0
	})

	matrix, err := precomputeDistances(ctx, factory, spots, provider)
	if err != nil {
		return nil, fmt.Errorf("solver: precompute distances: %w", err)
	}

	return &Solver{
		factory:  factory,
		vehicles: sorted,
		spots:    slices.Clone(spots),
		matrix:   matrix,
		geometry: geometry,
		rng:      rand.New(rand.NewSource(seed)),
		log:      opts.Logger,
		opts:     opts,
	}, nil
}

// Solve runs the full pipeline: greedy construction, the ALNS improvement
// loop, one consolidation pass, and result building.
func (s *Solver) Solve(ctx context.Context) (*domain.OptimizationResult, error) {
	totalDemand := 0
	for _, sp := range s.spots {
		totalDemand += sp.WorkerCount
	}
	totalCapacity := 0
	for _, v := range s.vehicles {
		totalCapacity += v.Capacity
	}
	s.log.Printf("solver: start vehicles=%d spots=%d demand=%d capacity=%d",
		len(s.vehicles), len(s.spots), totalDemand, totalCapacity)

	best := s.greedySolution()
	s.log.Printf("solver: greedy cost=%.0f distance=%.1fkm vehicles=%d",
		best.TotalCost, best.TotalDistance, best.VehiclesUsed)

	for i := 0; i < s.opts.Iterations; i++ {
		cand := s.alnsIteration(best)
		if cand != nil && cand.TotalCost < best.TotalCost {
			best = cand
			if i%20 == 0 {
				s.log.Printf("solver: iteration=%d cost=%.0f distance=%.1fkm vehicles=%d",
					i, best.TotalCost, best.TotalDistance, best.VehiclesUsed)
			}
		}
	}

	best = s.consolidate(best)
	s.log.Printf("solver: final cost=%.0f distance=%.1fkm vehicles=%d",
		best.TotalCost, best.TotalDistance, best.VehiclesUsed)

	return s.buildResult(ctx, best), nil
}
