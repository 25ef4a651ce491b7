package solver

// evaluate recomputes a solution's metrics from its assignment list.
// For each vehicle with at least one assignment, the distinct spots it serves
// are toured via nearest neighbor and priced at the vehicle's cost per km.
// Fitness adds a fixed penalty per vehicle used, encoding a strong preference
// for fewer vehicles even at extra distance cost.
func (s *Solver) evaluate(sol *Solution) {
	totalCost := 0.0
	totalDistance := 0.0
	vehiclesUsed := 0

	for _, v := range s.vehicles {
		spotIDs := s.distinctSpots(sol, v.ID)
		if len(spotIDs) == 0 {
			continue
		}
		vehiclesUsed++

		routeDistance := s.routeDistance(spotIDs)
		totalDistance += routeDistance
		totalCost += routeDistance * v.CostPerKm
	}

	sol.TotalCost = totalCost
	sol.TotalDistance = totalDistance
	sol.VehiclesUsed = vehiclesUsed
	sol.Fitness = totalCost + float64(vehiclesUsed)*s.opts.VehiclePenalty
}

// distinctSpots returns the distinct spot IDs assigned to a vehicle, in the
// order they are first encountered in the assignment list.
func (s *Solver) distinctSpots(sol *Solution, vehicleID string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range sol.Assignments {
		if a.VehicleID != vehicleID {
			continue
		}
		if _, ok := seen[a.SpotID]; ok {
			continue
		}
		seen[a.SpotID] = struct{}{}
		out = append(out, a.SpotID)
	}
	return out
}

// isValid checks the two hard invariants: no vehicle over capacity, and every
// spot's assigned workers summing exactly to its demand. It logs the first
// violation found and stops; detecting presence is enough for the search.
func (s *Solver) isValid(sol *Solution) bool {
	loads := make(map[string]int, len(s.vehicles))
	for _, a := range sol.Assignments {
		loads[a.VehicleID] += a.Workers
	}
	for _, v := range s.vehicles {
		if loads[v.ID] > v.Capacity {
			s.log.Printf("solver: capacity violation vehicle=%q load=%d capacity=%d",
				v.Name, loads[v.ID], v.Capacity)
			return false
		}
	}

	assigned := make(map[string]int, len(s.spots))
	for _, a := range sol.Assignments {
		assigned[a.SpotID] += a.Workers
	}
	for _, sp := range s.spots {
		if assigned[sp.ID] != sp.WorkerCount {
			s.log.Printf("solver: worker mismatch spot=%q assigned=%d expected=%d",
				sp.Name, assigned[sp.ID], sp.WorkerCount)
			return false
		}
	}

	return true
}
