package ports

import (
	"context"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// Port: a boundary for storing per-session optimization configuration.
// The core never touches this; the HTTP layer chooses a concrete adapter
// (in-memory map, Redis) at composition time.
type ConfigRepository interface {
	// Retrieve the configuration for a session. An unknown session yields a
	// fresh empty configuration, not an error.
	Get(ctx context.Context, sessionID string) (*domain.SessionConfig, error)
	// Persist the configuration for a session.
	Put(ctx context.Context, sessionID string, cfg *domain.SessionConfig) error
	// Remove the configuration for a session.
	Delete(ctx context.Context, sessionID string) error
}
