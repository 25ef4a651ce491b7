package domain

import (
	"errors"
	"fmt"
)

// VehicleCategory distinguishes company-owned from rented vehicles.
// It is informational only and does not affect optimization.
type VehicleCategory string

const (
	VehicleSelfOwned VehicleCategory = "Self-owned"
	VehicleRented    VehicleCategory = "Rented"
)

// Vehicle available for worker transport. Immutable during optimization.
type Vehicle struct {
	ID        string
	Name      string
	Category  VehicleCategory
	Capacity  int // number of seats
	CostPerKm float64
}

func (v Vehicle) Validate() error {
	if v.Name == "" {
		return errors.New("vehicle: name must be non-empty")
	}
	if v.Category != VehicleSelfOwned && v.Category != VehicleRented {
		return fmt.Errorf("vehicle %q: unknown category %q", v.Name, v.Category)
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("vehicle %q: capacity must be positive, got %d", v.Name, v.Capacity)
	}
	if v.CostPerKm <= 0 {
		return fmt.Errorf("vehicle %q: cost per km must be positive, got %g", v.Name, v.CostPerKm)
	}
	return nil
}
