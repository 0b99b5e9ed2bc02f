package cart

import (
	"context"
	"sync"

	"github.com/meera-jewels/meera/internal/kv"
	"github.com/meera-jewels/meera/internal/metrics"
)

const keyPrefix = "cart:"

// Manager hands out one Store per client ID, hydrating it from the
// key-value port on first use. Stores live for the remainder of the
// process once created; clients never share a store, and no cross-client
// synchronization channel exists (concurrent writes from the same client
// serialize on the store's mutex, last writer wins in storage).
type Manager struct {
	mu     sync.Mutex
	kv     kv.Store
	stores map[string]*Store
}

func NewManager(store kv.Store) *Manager {
	return &Manager{kv: store, stores: map[string]*Store{}}
}

// For returns the client's store, creating and hydrating it on first call.
func (m *Manager) For(ctx context.Context, clientID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[clientID]; ok {
		return s
	}
	s := NewStore(ctx, NewArchive(m.kv, keyPrefix+clientID))
	m.stores[clientID] = s
	metrics.ActiveCartStores.Set(float64(len(m.stores)))
	return s
}
