package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotTTL bounds how long a persisted session outlives its last mutation.
// It matches the identity token lifetime, so a snapshot never outlives the
// token it carries by much.
const snapshotTTL = 7 * 24 * time.Hour

// RedisRepository stores the session snapshot in Redis under the fixed
// namespace key. Useful when the client runtime is hosted (e.g., a kiosk or
// web shell) and local files are not durable.
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository creates a Redis-backed session repository.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{
		client: client,
		key:    "session:" + NamespaceKey,
	}
}

// Load reads the stored snapshot, or returns (nil, nil) when none exists.
func (r *RedisRepository) Load(ctx context.Context) (*Snapshot, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	return &snap, nil
}

// Save writes the snapshot with the configured TTL.
func (r *RedisRepository) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	return r.client.Set(ctx, r.key, data, snapshotTTL).Err()
}

// Clear removes the stored snapshot.
func (r *RedisRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
