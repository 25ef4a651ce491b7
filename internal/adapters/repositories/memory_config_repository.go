package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

// MemoryConfigRepository keeps session configurations in process memory.
// Configs are stored as JSON so callers never alias the stored value.
// Suitable for single-instance deployments and tests.
type MemoryConfigRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryConfigRepository() *MemoryConfigRepository {
	return &MemoryConfigRepository{items: map[string][]byte{}}
}

// Get returns the stored config for the session, or a fresh empty config
// when the session is unknown.
func (r *MemoryConfigRepository) Get(_ context.Context, sessionID string) (*domain.SessionConfig, error) {
	r.mu.RLock()
	raw, ok := r.items[sessionID]
	r.mu.RUnlock()

	if !ok {
		return &domain.SessionConfig{}, nil
	}

	var cfg domain.SessionConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("get session config %q: decode: %w", sessionID, err)
	}
	return &cfg, nil
}

func (r *MemoryConfigRepository) Put(_ context.Context, sessionID string, cfg *domain.SessionConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("put session config %q: encode: %w", sessionID, err)
	}

	r.mu.Lock()
	r.items[sessionID] = raw
	r.mu.Unlock()
	return nil
}

func (r *MemoryConfigRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.items, sessionID)
	r.mu.Unlock()
	return nil
}
