package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

func newRedisRepo(t *testing.T, ttl time.Duration) *RedisConfigRepository {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisConfigRepository(client, ttl)
}

func TestRedisRepoUnknownSessionIsEmpty(t *testing.T) {
	repo := newRedisRepo(t, 0)

	cfg, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Factory != nil || len(cfg.Vehicles) != 0 || len(cfg.Spots) != 0 {
		t.Errorf("unknown session not empty: %+v", cfg)
	}
}

func TestRedisRepoRoundTrip(t *testing.T) {
	repo := newRedisRepo(t, time.Hour)
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
	if len(out.Spots) != 1 || out.Spots[0].WorkerCount != 20 {
		t.Fatalf("spots lost: %+v", out.Spots)
	}
}

func TestRedisRepoDelete(t *testing.T) {
	repo := newRedisRepo(t, 0)
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
