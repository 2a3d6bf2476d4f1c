// internal/domain/cart/redis_store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists one session's cart as a single JSON blob under
// "cart:session:<id>", refreshed with a sliding TTL on every write.
type RedisStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewRedisStore creates a store bound to a session ID.
func NewRedisStore(client *redis.Client, sessionID string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, sessionID: sessionID, ttl: ttl}
}

func (r *RedisStore) key() string {
	return fmt.Sprintf("cart:session:%s", r.sessionID)
}

// Load reads the full cart snapshot. A missing key is an empty cart, not an
// error; unreachable Redis or a corrupted blob is ErrStoreUnavailable.
func (r *RedisStore) Load(ctx context.Context) ([]LineItem, error) {
	data, err := r.client.Get(ctx, r.key()).Result()
	if err == redis.Nil {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("%w: corrupted cart data: %v", ErrStoreUnavailable, err)
	}

	return items, nil
}

// Save writes the full cart snapshot.
func (r *RedisStore) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.client.Set(ctx, r.key(), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}
