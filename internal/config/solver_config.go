package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SolverConfig tunes the optimization loop. All fields are optional; zero
// values fall back to the solver defaults.
type SolverConfig struct {
	Iterations       int     `yaml:"iterations"`
	VehiclePenalty   float64 `yaml:"vehicle_penalty"`
	FallbackSpeedKmh float64 `yaml:"fallback_speed_kmh"`
	Seed             int64   `yaml:"seed"`
}

func (c *SolverConfig) validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("solver config: iterations must not be negative, got %d", c.Iterations)
	}
	if c.VehiclePenalty < 0 {
		return fmt.Errorf("solver config: vehicle_penalty must not be negative, got %g", c.VehiclePenalty)
	}
	if c.FallbackSpeedKmh < 0 {
		return fmt.Errorf("solver config: fallback_speed_kmh must not be negative, got %g", c.FallbackSpeedKmh)
	}
	return nil
}

// LoadSolverConfig reads solver tuning from a YAML file. A missing file is
// not an error; it yields the zero config so the solver uses its defaults.
func LoadSolverConfig(path string) (SolverConfig, error) {
	var cfg SolverConfig

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load solver config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("load solver config %q: parse yaml: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
