package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/meera-jewels/meera/internal/kv"
	"github.com/meera-jewels/meera/internal/metrics"
)

const profileKeyPrefix = "user:"

// SessionStore holds the current user for one client, persisted through
// the key-value port under the client's profile key. It is the identity
// analog of the cart store: same lifecycle, same degrade-to-empty load,
// same best-effort writes.
type SessionStore struct {
	mu       sync.Mutex
	registry *Registry
	kv       kv.Store
	key      string
	current  *User
}

// NewSessionStore creates a store hydrated from the persisted profile, if
// one exists and decodes. Corrupt or missing state means logged out.
func NewSessionStore(ctx context.Context, registry *Registry, store kv.Store, clientID string) *SessionStore {
	s := &SessionStore{
		registry: registry,
		kv:       store,
		key:      profileKeyPrefix + clientID,
	}
	raw, err := store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("auth: load %s: %v", s.key, err)
		}
		return s
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("auth: decode %s: %v", s.key, err)
		return s
	}
	s.current = &u
	return s
}

// Login checks the credentials against the registry. On success the
// profile becomes current and is persisted; on failure nothing changes.
func (s *SessionStore) Login(ctx context.Context, email, password string) bool {
	u, ok := s.registry.Authenticate(email, password)
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return false
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
	s.persist(ctx)
	return true
}

// Register appends to the registry and, on success, logs the new
// customer in.
func (s *SessionStore) Register(ctx context.Context, in RegisterInput) bool {
	u, ok := s.registry.Register(in)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
	s.persist(ctx)
	return true
}

// Logout clears the current user and removes the persisted profile.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.kv.Delete(ctx, s.key); err != nil {
		log.Printf("auth: delete %s: %v", s.key, err)
	}
}

// Current returns the logged-in profile, or nil.
func (s *SessionStore) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *SessionStore) IsAdmin() bool {
	u := s.Current()
	return u != nil && u.IsAdmin()
}

// persist writes the current profile. Failures are logged and swallowed,
// same contract as the cart. Caller holds the mutex.
func (s *SessionStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.current)
	if err != nil {
		log.Printf("auth: encode %s: %v", s.key, err)
		return
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		log.Printf("auth: persist %s: %v", s.key, err)
	}
}

// Manager hands out one SessionStore per client ID, mirroring the cart
// manager's lifecycle.
type Manager struct {
	mu       sync.Mutex
	registry *Registry
	kv       kv.Store
	stores   map[string]*SessionStore
}

func NewManager(registry *Registry, store kv.Store) *Manager {
	return &Manager{registry: registry, kv: store, stores: map[string]*SessionStore{}}
}

// For returns the client's session store, hydrating it on first call.
func (m *Manager) For(ctx context.Context, clientID string) *SessionStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[clientID]; ok {
		return s
	}
	s := NewSessionStore(ctx, m.registry, m.kv, clientID)
	m.stores[clientID] = s
	return s
}
