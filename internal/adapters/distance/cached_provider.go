package distance

import (
	"context"
	"fmt"
	"log"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

// CachedDistanceProvider consults a persistent distance cache before the
// inner provider. Pairs are canonicalized (lexicographically smaller key
// first) so each unordered pair is stored exactly once and lookups are
// symmetric by construction. Cache write failures are logged, never fatal.
type CachedDistanceProvider struct {
	inner ports.DistanceProvider
	cache ports.DistanceCache
}

func NewCachedDistanceProvider(inner ports.DistanceProvider, cache ports.DistanceCache) *CachedDistanceProvider {
	return &CachedDistanceProvider{inner: inner, cache: cache}
}

// PointKey normalizes a coordinate into a stable cache key.
func PointKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

func (p *CachedDistanceProvider) Distance(ctx context.Context, a, b domain.Coordinates) (float64, error) {
	origin, dest := PointKey(a), PointKey(b)
	if dest < origin {
		origin, dest = dest, origin
	}

	if p.cache != nil {
		hits, err := p.cache.GetMany(ctx, origin, []string{dest})
		if err != nil {
			return 0, fmt.Errorf("distance cache read: %w", err)
		}
		if km, ok := hits[dest]; ok {
			return km, nil
		}
	}

	km, err := p.inner.Distance(ctx, a, b)
	if err != nil {
		return 0, err
	}

	if p.cache != nil {
		if err := p.cache.PutMany(ctx, origin, map[string]float64{dest: km}); err != nil {
			log.Printf("distance cache write failed: %v", err)
		}
	}

	return km, nil
}
