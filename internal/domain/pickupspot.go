package domain

import (
	"errors"
	"fmt"
)

// PickupSpot is a fixed location where workers wait for transport.
// All WorkerCount workers must be picked up. Immutable during optimization;
// the solver may carry transient copies with a reduced worker count to track
// partially served spots, but those copies are never persisted.
type PickupSpot struct {
	ID          string
	Name        string
	Location    Coordinates
	WorkerCount int
}

func (p PickupSpot) Validate() error {
	if p.Name == "" {
		return errors.New("pickup spot: name must be non-empty")
	}
	if p.WorkerCount <= 0 {
		return fmt.Errorf("pickup spot %q: worker count must be positive, got %d", p.Name, p.WorkerCount)
	}
	return p.Location.Validate()
}

// Validate bounds-checks latitude and longitude.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %g out of range [-180, 180]", c.Lon)
	}
	return nil
}
