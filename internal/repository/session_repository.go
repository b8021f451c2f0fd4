package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/console-service/internal/persistence"
)

// Session keys. Each maps to one plain-string Redis value.
const (
	SessionKeyRole     = "role"
	SessionKeyLanguage = "language"
	SessionKeyTheme    = "theme"
)

// SessionRepository persists the scalar session keys to the durable
// key-value store. Get returns an empty string for a missing key.
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type redisSessionRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionRepository returns a Redis-backed implementation.
func NewRedisSessionRepository(r *persistence.Redis, appName string) SessionRepository {
	return &redisSessionRepository{client: r.Client, prefix: appName + ":session:"}
}

func (r *redisSessionRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session get %q: %w", key, err)
	}
	return val, nil
}

func (r *redisSessionRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("session set %q: %w", key, err)
	}
	return nil
}
