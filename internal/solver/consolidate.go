package solver

// consolidate rebuilds the assignment from scratch, trying to put each
// spot's entire demand on one vehicle, cheapest first. It runs exactly once
// after the ALNS loop. The pass is strictly guarded: any placement failure,
// failed validation, or capacity overrun returns the prior solution
// unchanged, and the rebuilt solution is only adopted when its cost or its
// vehicle count strictly improves.
func (s *Solver) consolidate(sol *Solution) *Solution {
	consolidated := &Solution{}

	for _, sp := range s.spots {
		// Total demand as carried by the current solution; for a feasible
		// solution this equals the spot's declared worker count.
		total := sol.spotAssigned(sp.ID)

		placed := false
		for _, v := range s.vehicles {
			if consolidated.vehicleLoad(v.ID)+total <= v.Capacity {
				consolidated.Assignments = append(consolidated.Assignments, Assignment{
					SpotID:    sp.ID,
					VehicleID: v.ID,
					Workers:   total,
				})
				placed = true
				break
			}
		}

		if !placed {
			remaining := total
			for _, v := range s.vehicles {
				if remaining <= 0 {
					break
				}
				available := v.Capacity - consolidated.vehicleLoad(v.ID)
				if available > 0 {
					pickup := min(remaining, available)
					consolidated.Assignments = append(consolidated.Assignments, Assignment{
						SpotID:    sp.ID,
						VehicleID: v.ID,
						Workers:   pickup,
					})
					remaining -= pickup
				}
			}

			if remaining > 0 {
				s.log.Printf("solver: consolidation aborted, %d workers from %q unplaced",
					remaining, sp.Name)
				return sol
			}
		}
	}

	if !s.isValid(consolidated) {
		s.log.Printf("solver: consolidation failed validation, keeping prior solution")
		return sol
	}

	// Redundant with isValid but kept as a hard gate before acceptance.
	for _, v := range s.vehicles {
		if load := consolidated.vehicleLoad(v.ID); load > v.Capacity {
			s.log.Printf("solver: consolidation capacity overrun vehicle=%q load=%d capacity=%d",
				v.Name, load, v.Capacity)
			return sol
		}
	}

	s.evaluate(consolidated)

	if consolidated.TotalCost < sol.TotalCost || consolidated.VehiclesUsed < sol.VehiclesUsed {
		s.log.Printf("solver: consolidated vehicles %d -> %d, cost %.0f -> %.0f",
			sol.VehiclesUsed, consolidated.VehiclesUsed, sol.TotalCost, consolidated.TotalCost)
		return consolidated
	}

	return sol
}
