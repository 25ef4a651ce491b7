package solver

import "sort"

// Destroy operators for the ALNS loop, chosen uniformly at random each
// iteration.
const (
	destroyRandom = iota
	destroyWorst
	destroyRelated
)

// alnsIteration performs one destroy/repair step on a copy of the current
// best solution. It returns nil when the candidate is infeasible; the caller
// keeps candidates only when their total cost strictly improves, so the loop
// never backtracks to a worse state.
func (s *Solver) alnsIteration(best *Solution) *Solution {
	if len(s.spots) == 0 {
		return nil
	}

	cand := best.Copy()

	k := s.destroyCount()
	var destroyed map[string]struct{}

	switch s.rng.Intn(3) {
	case destroyRandom:
		destroyed = s.destroyRandomSpots(k)
	case destroyWorst:
		destroyed = s.destroyWorstSpots(cand, k)
	default:
		destroyed = s.destroyRelatedSpots(k)
	}

	// Destroy: drop every assignment referencing a chosen spot.
	kept := cand.Assignments[:0]
	for _, a := range cand.Assignments {
		if _, ok := destroyed[a.SpotID]; !ok {
			kept = append(kept, a)
		}
	}
	cand.Assignments = kept

	// Repair: reinsert destroyed spots in original input order, whole demand
	// on the cheapest vehicle with room, else split across vehicles in cost
	// order.
	for _, sp := range s.spots {
		if _, ok := destroyed[sp.ID]; !ok {
			continue
		}
		s.reinsert(cand, sp.ID, sp.WorkerCount)
	}

	if !s.isValid(cand) {
		return nil
	}
	s.evaluate(cand)
	return cand
}

// destroyCount draws k uniformly from [2, min(5, len(spots))], clamped down
// when fewer than two spots exist.
func (s *Solver) destroyCount() int {
	upper := min(5, len(s.spots))
	if upper < 2 {
		return upper
	}
	return 2 + s.rng.Intn(upper-1)
}

// destroyRandomSpots picks k spots uniformly without replacement.
func (s *Solver) destroyRandomSpots(k int) map[string]struct{} {
	out := make(map[string]struct{}, k)
	for _, idx := range s.rng.Perm(len(s.spots))[:k] {
		out[s.spots[idx].ID] = struct{}{}
	}
	return out
}

// destroyWorstSpots removes the spots with the highest estimated cost
// contribution: round-trip factory distance times the fleet's average cost
// per km times the number of distinct vehicles currently serving the spot.
func (s *Solver) destroyWorstSpots(sol *Solution, k int) map[string]struct{} {
	avgCost := 0.0
	for _, v := range s.vehicles {
		avgCost += v.CostPerKm
	}
	if len(s.vehicles) > 0 {
		avgCost /= float64(len(s.vehicles))
	}

	type spotCost struct {
		id   string
		cost float64
	}
	var costs []spotCost
	for _, sp := range s.spots {
		vehicles := make(map[string]struct{})
		for _, a := range sol.Assignments {
			if a.SpotID == sp.ID {
				vehicles[a.VehicleID] = struct{}{}
			}
		}
		if len(vehicles) == 0 {
			continue
		}
		est := 2 * s.matrix.dist(factoryKey, sp.ID) * avgCost * float64(len(vehicles))
		costs = append(costs, spotCost{id: sp.ID, cost: est})
	}

	// Stable sort keeps input order on ties for reproducible removals.
	sort.SliceStable(costs, func(i, j int) bool { return costs[i].cost > costs[j].cost })

	out := make(map[string]struct{}, k)
	for i := 0; i < len(costs) && i < k; i++ {
		out[costs[i].id] = struct{}{}
	}
	return out
}

// destroyRelatedSpots seeds with one random spot and greedily grows a
// geographically coherent removal set: each step adds the spot whose summed
// distance to all already-removed spots is smallest.
func (s *Solver) destroyRelatedSpots(k int) map[string]struct{} {
	seed := s.spots[s.rng.Intn(len(s.spots))]
	out := map[string]struct{}{seed.ID: {}}

	for len(out) < k && len(out) < len(s.spots) {
		nearest := ""
		nearestDist := 0.0
		for _, sp := range s.spots {
			if _, ok := out[sp.ID]; ok {
				continue
			}
			sum := 0.0
			for id := range out {
				sum += s.matrix.dist(id, sp.ID)
			}
			if nearest == "" || sum < nearestDist {
				nearest = sp.ID
				nearestDist = sum
			}
		}
		if nearest == "" {
			break
		}
		out[nearest] = struct{}{}
	}

	return out
}

// reinsert places a spot's demand back into the solution: whole on the first
// vehicle (cost-ascending) with enough spare capacity, otherwise split
// greedily across vehicles until the demand is exhausted.
func (s *Solver) reinsert(sol *Solution, spotID string, demand int) {
	remaining := demand

	for _, v := range s.vehicles {
		available := v.Capacity - sol.vehicleLoad(v.ID)
		if available >= remaining {
			sol.Assignments = append(sol.Assignments, Assignment{
				SpotID:    spotID,
				VehicleID: v.ID,
				Workers:   remaining,
			})
			return
		}
	}

	for _, v := range s.vehicles {
		if remaining <= 0 {
			return
		}
		available := v.Capacity - sol.vehicleLoad(v.ID)
		if available > 0 {
			pickup := min(remaining, available)
			sol.Assignments = append(sol.Assignments, Assignment{
				SpotID:    spotID,
				VehicleID: v.ID,
				Workers:   pickup,
			})
			remaining -= pickup
		}
	}
}
