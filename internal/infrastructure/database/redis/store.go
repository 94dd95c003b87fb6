// internal/infrastructure/database/redis/store.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/redis/go-redis/v9"
)

// Store persists storefront slots as plain Redis strings
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a Redis-backed store. A zero ttl keeps keys forever.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

var _ storage.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
