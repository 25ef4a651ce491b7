package solver

// Assignment states that some of a pickup spot's workers ride a vehicle.
// Multiple assignments may reference the same (spot, vehicle) pair in
// intermediate states; they are additive.
type Assignment struct {
	SpotID    string
	VehicleID string
	Workers   int
}

// Solution is an ordered assignment list plus derived metrics. The
// assignment list is the only source of truth; metrics are recomputed from
// it by evaluate, never maintained incrementally.
type Solution struct {
	Assignments []Assignment

	Fitness       float64
	TotalCost     float64
	TotalDistance float64
	VehiclesUsed  int
}

// Copy returns a deep, independent solution so candidate branches cannot
// contaminate the current best.
func (s *Solution) Copy() *Solution {
	out := &Solution{
		Assignments:   make([]Assignment, len(s.Assignments)),
		Fitness:       s.Fitness,
		TotalCost:     s.TotalCost,
		TotalDistance: s.TotalDistance,
		VehiclesUsed:  s.VehiclesUsed,
	}
	copy(out.Assignments, s.Assignments)
	return out
}

// vehicleLoad sums the workers currently assigned to one vehicle.
func (s *Solution) vehicleLoad(vehicleID string) int {
	load := 0
	for _, a := range s.Assignments {
		if a.VehicleID == vehicleID {
			load += a.Workers
		}
	}
	return load
}

// spotAssigned sums the workers assigned from one pickup spot.
func (s *Solution) spotAssigned(spotID string) int {
	total := 0
	for _, a := range s.Assignments {
		if a.SpotID == spotID {
			total += a.Workers
		}
	}
	return total
}
