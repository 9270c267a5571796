package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPersister keeps the snapshot under a single redis key with no TTL.
type RedisPersister struct {
	client *redis.Client
	key    string
}

// NewRedisPersister constructs a redis-backed persister.
func NewRedisPersister(client *redis.Client, key string) (*RedisPersister, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client must not be nil")
	}
	if key == "" {
		return nil, fmt.Errorf("snapshot key must not be empty")
	}
	return &RedisPersister{client: client, key: key}, nil
}

// Save writes the snapshot payload.
func (p *RedisPersister) Save(ctx context.Context, payload []byte) error {
	if err := p.client.Set(ctx, p.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot payload, or ErrNotFound when the key is absent.
func (p *RedisPersister) Load(ctx context.Context) ([]byte, error) {
	payload, err := p.client.Get(ctx, p.key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return payload, nil
}
