package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

const sessionKeyPrefix = "smartroute:session:"

// RedisConfigRepository stores session configurations in Redis so multiple
// instances can share sessions. A zero TTL keeps sessions forever.
type RedisConfigRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConfigRepository(client *redis.Client, ttl time.Duration) *RedisConfigRepository {
	return &RedisConfigRepository{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Get returns the stored config for the session, or a fresh empty config
// when the session is unknown.
func (r *RedisConfigRepository) Get(ctx context.Context, sessionID string) (*domain.SessionConfig, error) {
	raw, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.SessionConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session config %q: redis get: %w", sessionID, err)
	}

	var cfg domain.SessionConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("get session config %q: decode: %w", sessionID, err)
	}
	return &cfg, nil
}

func (r *RedisConfigRepository) Put(ctx context.Context, sessionID string, cfg *domain.SessionConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("put session config %q: encode: %w", sessionID, err)
	}

	if err := r.client.Set(ctx, sessionKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("put session config %q: redis set: %w", sessionID, err)
	}
	return nil
}

func (r *RedisConfigRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session config %q: redis del: %w", sessionID, err)
	}
	return nil
}
