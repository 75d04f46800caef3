package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.IDSequence = (*Sequence)(nil)

// Sequence hands out integer ids with INCR.
// Key format: seq:<kind>
type Sequence struct {
	client *redis.Client
	prefix string
}

// NewSequence creates a Sequence wrapping the given Redis client.
func NewSequence(client *redis.Client) *Sequence {
	return &Sequence{client: client, prefix: "seq"}
}

func (s *Sequence) Next(ctx context.Context, kind string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := s.client.Incr(ctx, s.key(kind)).Result()
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", kind, err)
	}
	return id, nil
}

// Ping reports whether Redis is reachable.
func (s *Sequence) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Sequence) key(kind string) string {
	return fmt.Sprintf("%s:%s", s.prefix, kind)
}
