package repositories

import (
	"context"
	"testing"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

func TestMemoryRepoUnknownSessionIsEmpty(t *testing.T) {
	repo := NewMemoryConfigRepository()

	cfg, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Factory != nil || len(cfg.Vehicles) != 0 || len(cfg.Spots) != 0 {
		t.Errorf("unknown session not empty: %+v", cfg)
	}
	if cfg.ProgressStep() != 1 {
		t.Errorf("progress step = %d, want 1", cfg.ProgressStep())
	}
}

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo := NewMemoryConfigRepository()
	ctx := context.Background()

	in := &domain.SessionConfig{
		Factory: &domain.Factory{Name: "Plant", Location: domain.Coordinates{Lat: 24.86, Lon: 67.00}},
		Vehicles: []domain.Vehicle{
			{ID: "v1", Name: "Bus A", Category: domain.VehicleSelfOwned, Capacity: 30, CostPerKm: 5},
		},
		Spots: []domain.PickupSpot{
			{ID: "s1", Name: "Gate", Location: domain.Coordinates{Lat: 24.88, Lon: 67.05}, WorkerCount: 20},
		},
	}
	if err := repo.Put(ctx, "sess", in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	out, err := repo.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Factory == nil || out.Factory.Name != "Plant" {
		t.Fatalf("factory lost: %+v", out.Factory)
	}
	if len(out.Vehicles) != 1 || out.Vehicles[0].ID != "v1" {
		t.Fatalf("vehicles lost: %+v", out.Vehicles)
	}
	if !out.IsComplete() {
		t.Errorf("round-tripped config not complete")
	}

	// Stored value must not alias the caller's struct.
	in.Vehicles[0].Capacity = 999
	again, _ := repo.Get(ctx, "sess")
	if again.Vehicles[0].Capacity == 999 {
		t.Errorf("stored config aliases caller's slice")
	}
}

func TestMemoryRepoDelete(t *testing.T) {
	repo := NewMemoryConfigRepository()
	ctx := context.Background()

	cfg := &domain.SessionConfig{Factory: &domain.Factory{Name: "Plant", Location: domain.Coordinates{Lat: 1, Lon: 1}}}
	if err := repo.Put(ctx, "sess", cfg); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Delete(ctx, "sess"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	out, err := repo.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Factory != nil {
		t.Errorf("config survived delete: %+v", out)
	}
}
