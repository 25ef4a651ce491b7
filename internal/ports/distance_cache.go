package ports

import "context"

// Port: a persistent cache of point-to-point distances, keyed by normalized
// coordinate strings. Callers are expected to canonicalize key order so each
// unordered pair is stored once.
type DistanceCache interface {
	// Fetch cached distances (km) from one origin key to many destination keys.
	// Missing destinations are simply absent from the result map.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]float64, error)
	// Store distances (km) from one origin key to many destination keys.
	PutMany(ctx context.Context, origin string, results map[string]float64) error
}
