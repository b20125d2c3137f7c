package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// processingPlaceholder marks a key whose first request is still in
// flight. A concurrent retry sees it and is told to back off rather
// than booking the same document twice.
const processingPlaceholder = "processing"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// CheckAndSet atomically checks whether key has been seen. If a
// response was already recorded it is returned with seen=true. For a
// new key the store either records the given response or, when
// response is nil, takes a placeholder lock so concurrent requests
// with the same key wait for the first one to finish.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if err != redis.Nil {
		return false, nil, fmt.Errorf("check idempotency key: %w", err)
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, fmt.Errorf("record idempotency response: %w", err)
		}
		return false, nil, nil
	}

	set, err := s.client.SetNX(ctx, fullKey, processingPlaceholder, ttl).Result()
	if err != nil {
		return false, nil, fmt.Errorf("lock idempotency key: %w", err)
	}
	if !set {
		// Lost the race; return whatever the winner stored.
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && err != redis.Nil {
			return false, nil, fmt.Errorf("read idempotency key: %w", err)
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces the placeholder with the final response.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, response, ttl).Err(); err != nil {
		return fmt.Errorf("update idempotency key: %w", err)
	}
	return nil
}
