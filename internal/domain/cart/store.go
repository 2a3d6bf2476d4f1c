// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreUnavailable indicates the persisted cart could not be read or
// written. A mutation that fails with it must not be assumed committed.
var ErrStoreUnavailable = errors.New("cart store unavailable")

// Store persists the cart as a whole: every write replaces the full snapshot,
// never a partial patch.
type Store interface {
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}

// MemoryStore keeps the cart in process memory. Used in tests and as a
// fallback when no Redis session is configured.
type MemoryStore struct {
	mu    sync.Mutex
	items []LineItem
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored cart.
func (m *MemoryStore) Load(ctx context.Context) ([]LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]LineItem, len(m.items))
	copy(items, m.items)
	return items, nil
}

// Save replaces the stored cart.
func (m *MemoryStore) Save(ctx context.Context, items []LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make([]LineItem, len(items))
	copy(m.items, items)
	return nil
}
