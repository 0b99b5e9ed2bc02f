// Package cart holds the shopping cart state for one client: the line-item
// set, the four mutation entry points, and the derived totals. The store is
// the single source of truth within its client's session; everything else
// reads derived values and calls mutations, never touching state directly.
package cart

import (
	"context"
	"log"
	"sync"

	"github.com/meera-jewels/meera/internal/metrics"
)

// LineItem is one cart entry: a single product id and its quantity.
// Display fields are captured when the product is first added and are never
// re-synced against the catalog.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Weight   string `json:"weight,omitempty"`
	Purity   string `json:"purity,omitempty"`
}

// Item is the add-time input: a line item before it has a quantity.
type Item struct {
	ID     string
	Name   string
	Price  int64
	Image  string
	Weight string
	Purity string
}

// Store owns the line-item set for one client. Constructed once per client
// via Manager and never torn down during the process lifetime.
//
// Invariants: at most one line per product id; quantity >= 1 for every line
// that exists (a mutation that would reach 0 deletes the line instead).
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	archive   *Archive
	listeners []func()
}

// NewStore creates a store hydrated from the archive's persisted
// representation. An absent or unreadable representation yields an empty
// cart, never an error.
func NewStore(ctx context.Context, archive *Archive) *Store {
	return &Store{
		items:   archive.Load(ctx),
		archive: archive,
	}
}

// Subscribe registers fn to be called synchronously after every mutation.
// Listeners re-fetch derived values themselves; no payload is passed.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// AddToCart upserts by product id: an existing line gets its quantity
// incremented by 1 and keeps every captured field from the original add;
// an absent line is inserted with quantity 1. Quantity is unbounded.
func (s *Store) AddToCart(ctx context.Context, item Item) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: 1,
			Weight:   item.Weight,
			Purity:   item.Purity,
		})
	}
	notify := s.persistLocked(ctx, "add")
	s.mu.Unlock()

	notify()
}

// UpdateQuantity sets an absolute quantity for the line with the given id.
// A quantity of zero or below removes the line. Both cases are no-ops when
// the id is absent.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	mutated := false
	if quantity <= 0 {
		mutated = s.removeLocked(id)
	} else {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Quantity = quantity
				mutated = true
				break
			}
		}
	}
	if !mutated {
		s.mu.Unlock()
		return
	}
	notify := s.persistLocked(ctx, "update_quantity")
	s.mu.Unlock()

	notify()
}

// RemoveFromCart deletes the line with the given id. Idempotent: a second
// call for the same id is a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, id string) {
	s.mu.Lock()
	if !s.removeLocked(id) {
		s.mu.Unlock()
		return
	}
	notify := s.persistLocked(ctx, "remove")
	s.mu.Unlock()

	notify()
}

// ClearCart empties the line-item set unconditionally.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	notify := s.persistLocked(ctx, "clear")
	s.mu.Unlock()

	notify()
}

// Items returns a copy of the current line-item set.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across all lines,
// recomputed on every call.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, it := range s.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// removeLocked deletes the line with the given id, reporting whether it
// existed. Caller holds the mutex.
func (s *Store) removeLocked(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// persistLocked writes the full line-item set and returns the listener
// notification, to be invoked after the mutex is released so listeners can
// re-fetch derived values. A failed write is logged and swallowed: the
// in-memory mutation stands and the caller's request proceeds. The client
// keeps a correct cart for the rest of the session and loses it on the
// next load, which is the accepted durability contract. Caller holds the
// mutex.
func (s *Store) persistLocked(ctx context.Context, op string) func() {
	metrics.CartMutationsTotal.WithLabelValues(op).Inc()

	if err := s.archive.Save(ctx, s.items); err != nil {
		metrics.CartPersistErrorsTotal.Inc()
		log.Printf("cart: persist after %s: %v", op, err)
	}

	fns := make([]func(), len(s.listeners))
	copy(fns, s.listeners)
	return func() {
		for _, fn := range fns {
			fn()
		}
	}
}
