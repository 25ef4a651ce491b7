package distance

import (
	"context"
	"testing"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// fakeCache records lookups and writes in memory.
type fakeCache struct {
	data map[string]map[string]float64
	gets int
	puts int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]map[string]float64{}}
}

func (c *fakeCache) GetMany(_ context.Context, origin string, dests []string) (map[string]float64, error) {
	c.gets++
	out := map[string]float64{}
	for _, d := range dests {
		if km, ok := c.data[origin][d]; ok {
			out[d] = km
		}
	}
	return out, nil
}

func (c *fakeCache) PutMany(_ context.Context, origin string, results map[string]float64) error {
	c.puts++
	if c.data[origin] == nil {
		c.data[origin] = map[string]float64{}
	}
	for d, km := range results {
		c.data[origin][d] = km
	}
	return nil
}

func TestCachedProviderWritesBackMisses(t *testing.T) {
	a := domain.Coordinates{Lat: 1, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 1}

	inner := NewMockDistanceProvider([]MockPair{{From: a, To: b, Km: 7}})
	cache := newFakeCache()
	p := NewCachedDistanceProvider(inner, cache)

	km, err := p.Distance(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if km != 7 {
		t.Fatalf("distance = %v, want 7", km)
	}
	if inner.Calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.Calls)
	}
	if cache.puts != 1 {
		t.Fatalf("cache writes = %d, want 1", cache.puts)
	}

	// Second lookup is served from the cache.
	if _, err := p.Distance(context.Background(), a, b); err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if inner.Calls != 1 {
		t.Errorf("inner calls after cached lookup = %d, want 1", inner.Calls)
	}
}

// Reversed point order hits the same cache entry: keys are canonicalized.
func TestCachedProviderSymmetricKeys(t *testing.T) {
	a := domain.Coordinates{Lat: 1, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 1}

	inner := NewMockDistanceProvider([]MockPair{{From: a, To: b, Km: 7}})
	cache := newFakeCache()
	p := NewCachedDistanceProvider(inner, cache)

	if _, err := p.Distance(context.Background(), a, b); err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if _, err := p.Distance(context.Background(), b, a); err != nil {
		t.Fatalf("Distance reversed: %v", err)
	}
	if inner.Calls != 1 {
		t.Errorf("inner calls = %d, want 1 (reverse direction should hit cache)", inner.Calls)
	}
}

func TestCachedProviderNilCachePassesThrough(t *testing.T) {
	a := domain.Coordinates{Lat: 1, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 1}

	inner := NewMockDistanceProvider([]MockPair{{From: a, To: b, Km: 3}})
	p := NewCachedDistanceProvider(inner, nil)

	km, err := p.Distance(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if km != 3 {
		t.Errorf("distance = %v, want 3", km)
	}
}
