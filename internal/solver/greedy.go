package solver

import (
	"slices"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// greedySolution builds the initial assignment: cheapest vehicles first,
// largest spots first (first-fit-decreasing), filling each vehicle to
// capacity before moving on. A spot that does not fit whole is split: the
// vehicle takes what it can and a virtual spot with the leftover workers is
// kept on the working list for later vehicles. The original spot set is
// never mutated.
func (s *Solver) greedySolution() *Solution {
	sol := &Solution{}

	// Largest demand first reduces fragmentation, classic bin packing.
	unassigned := slices.Clone(s.spots)
	slices.SortStableFunc(unassigned, func(a, b domain.PickupSpot) int {
		return b.WorkerCount - a.WorkerCount
	})

	for _, v := range s.vehicles {
		if len(unassigned) == 0 {
			break
		}

		load := 0
		var remaining []domain.PickupSpot

		for _, sp := range unassigned {
			switch {
			case load+sp.WorkerCount <= v.Capacity:
				// Entire spot fits.
				sol.Assignments = append(sol.Assignments, Assignment{
					SpotID:    sp.ID,
					VehicleID: v.ID,
					Workers:   sp.WorkerCount,
				})
				load += sp.WorkerCount
			case load < v.Capacity:
				// Partial pickup: fill the vehicle and carry the leftover
				// workers as a virtual spot for the next vehicle.
				available := v.Capacity - load
				sol.Assignments = append(sol.Assignments, Assignment{
					SpotID:    sp.ID,
					VehicleID: v.ID,
					Workers:   available,
				})
				load = v.Capacity

				leftover := sp
				leftover.WorkerCount = sp.WorkerCount - available
				remaining = append(remaining, leftover)
			default:
				// Vehicle full; keep the spot for the next vehicle.
				remaining = append(remaining, sp)
			}
		}

		unassigned = remaining
	}

	totalAssigned := 0
	for _, a := range sol.Assignments {
		totalAssigned += a.Workers
	}
	totalWorkers := 0
	for _, sp := range s.spots {
		totalWorkers += sp.WorkerCount
	}
	if totalAssigned < totalWorkers {
		// Not an error: the partial solution is still the starting point for
		// improvement, and the shortfall is surfaced in the final result.
		s.log.Printf("solver: warning, only assigned %d/%d workers", totalAssigned, totalWorkers)
	}

	s.evaluate(sol)
	return sol
}
