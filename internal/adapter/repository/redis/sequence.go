package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SequenceRepository implements usecase.SequenceRepository with an
// atomic Redis counter per sequence name. It replaces the ad-hoc
// in-process counters of older builds: numbers are unique and
// monotonically increasing across every process sharing the instance.
type SequenceRepository struct {
	client *redis.Client
	prefix string
}

// NewSequenceRepository creates a new SequenceRepository.
func NewSequenceRepository(client *redis.Client) *SequenceRepository {
	return &SequenceRepository{
		client: client,
		prefix: "seq:",
	}
}

// Next returns the next number in the named sequence, starting at 1.
func (s *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	n, err := s.client.Incr(ctx, s.prefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", name, err)
	}
	return n, nil
}

// Current returns the last number handed out, or 0 for an untouched
// sequence.
func (s *SequenceRepository) Current(ctx context.Context, name string) (int64, error) {
	n, err := s.client.Get(ctx, s.prefix+name).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", name, err)
	}
	return n, nil
}
