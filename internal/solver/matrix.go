package solver

import (
	"context"
	"fmt"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

// factoryKey is the reserved matrix key for the factory location.
const factoryKey = "factory"

type pairKey struct {
	From string
	To   string
}

// distanceMatrix holds precomputed kilometers between the factory and every
// spot, and between every pair of spots, stored symmetrically.
type distanceMatrix map[pairKey]float64

// dist looks up a cached distance. Missing keys yield 0; callers must stay
// within the precomputed key set.
func (m distanceMatrix) dist(from, to string) float64 {
	return m[pairKey{From: from, To: to}]
}

// precomputeDistances queries the provider once per unordered pair and stores
// both directions, keeping the search loop free of provider calls.
func precomputeDistances(
	ctx context.Context,
	factory domain.Factory,
	spots []domain.PickupSpot,
	provider ports.DistanceProvider,
) (distanceMatrix, error) {
	m := make(distanceMatrix, len(spots)*(len(spots)+1))

	for _, sp := range spots {
		d, err := provider.Distance(ctx, factory.Location, sp.Location)
		if err != nil {
			return nil, fmt.Errorf("factory -> %q: %w", sp.Name, err)
		}
		m[pairKey{From: factoryKey, To: sp.ID}] = d
		m[pairKey{From: sp.ID, To: factoryKey}] = d
	}

	for i, a := range spots {
		for _, b := range spots[i+1:] {
			d, err := provider.Distance(ctx, a.Location, b.Location)
			if err != nil {
				return nil, fmt.Errorf("%q -> %q: %w", a.Name, b.Name, err)
			}
			m[pairKey{From: a.ID, To: b.ID}] = d
			m[pairKey{From: b.ID, To: a.ID}] = d
		}
	}

	return m, nil
}

// routeDistance computes the closed tour factory -> spots -> factory using a
// nearest-neighbor heuristic over cached distances. Ties are broken by the
// first spot found in iteration order, which keeps the result deterministic
// for a fixed input order.
func (s *Solver) routeDistance(spotIDs []string) float64 {
	if len(spotIDs) == 0 {
		return 0
	}

	current := factoryKey
	remaining := make([]string, len(spotIDs))
	copy(remaining, spotIDs)
	total := 0.0

	for len(remaining) > 0 {
		nearestIdx := -1
		nearestDist := 0.0
		for i, id := range remaining {
			d := s.matrix.dist(current, id)
			if nearestIdx == -1 || d < nearestDist {
				nearestIdx = i
				nearestDist = d
			}
		}

		total += nearestDist
		current = remaining[nearestIdx]
		remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)
	}

	return total + s.matrix.dist(current, factoryKey)
}
