package domain

// SessionConfig is the per-session optimization input being assembled by the
// caller: factory, fleet, and pickup spots, plus the most recent result.
type SessionConfig struct {
	Factory  *Factory
	Vehicles []Vehicle
	Spots    []PickupSpot
	Result   *OptimizationResult
}

// IsComplete reports whether the configuration can be optimized.
func (c *SessionConfig) IsComplete() bool {
	return c.Factory != nil && len(c.Vehicles) > 0 && len(c.Spots) > 0
}

// ProgressStep returns the current setup step (1-4) for UI guidance.
func (c *SessionConfig) ProgressStep() int {
	switch {
	case c.Factory == nil:
		return 1
	case len(c.Vehicles) == 0:
		return 2
	case len(c.Spots) == 0:
		return 3
	default:
		return 4
	}
}
