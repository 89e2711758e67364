package repository

import (
	"context"
	"time"

	"github.com/diagnosis/carnet/pkg/middleware"
	"github.com/redis/go-redis/v9"
)

type idempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore returns a Redis-backed response cache for the
// idempotency middleware.
func NewIdempotencyStore(client *redis.Client) middleware.IdempotencyStore {
	return &idempotencyStore{client: client}
}

func (s *idempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *idempotencyStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}
