package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSolverConfigMissingFile(t *testing.T) {
	cfg, err := LoadSolverConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSolverConfig: %v", err)
	}
	if cfg != (SolverConfig{}) {
		t.Errorf("missing file yielded non-zero config: %+v", cfg)
	}
}

func TestLoadSolverConfigEmptyPath(t *testing.T) {
	cfg, err := LoadSolverConfig("")
	if err != nil {
		t.Fatalf("LoadSolverConfig: %v", err)
	}
	if cfg != (SolverConfig{}) {
		t.Errorf("empty path yielded non-zero config: %+v", cfg)
	}
}

func TestLoadSolverConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	body := "iterations: 250\nvehicle_penalty: 500\nfallback_speed_kmh: 35\nseed: 42\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadSolverConfig(path)
	if err != nil {
		t.Fatalf("LoadSolverConfig: %v", err)
	}
	if cfg.Iterations != 250 || cfg.VehiclePenalty != 500 || cfg.FallbackSpeedKmh != 35 || cfg.Seed != 42 {
		t.Errorf("parsed config = %+v", cfg)
	}
}

func TestLoadSolverConfigRejectsNegatives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	if err := os.WriteFile(path, []byte("iterations: -1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadSolverConfig(path); err == nil {
		t.Errorf("negative iterations accepted")
	}
}
