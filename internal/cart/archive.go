package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/meera-jewels/meera/internal/kv"
	"github.com/meera-jewels/meera/internal/metrics"
)

// Archive translates between a store's line-item set and its persisted
// representation: a JSON array written whole under a fixed key in the
// key-value port. It is a per-client convenience cache, not a record of
// truth; read failures degrade to an empty cart.
type Archive struct {
	store kv.Store
	key   string
}

func NewArchive(store kv.Store, key string) *Archive {
	return &Archive{store: store, key: key}
}

// Load reads and decodes the persisted line-item set. An absent key yields
// an empty set silently; a corrupt value yields an empty set with a log
// line. Load never returns an error to the caller.
func (a *Archive) Load(ctx context.Context) []LineItem {
	raw, err := a.store.Get(ctx, a.key)
	if errors.Is(err, kv.ErrNotFound) {
		metrics.CartLoadsTotal.WithLabelValues("empty").Inc()
		return nil
	}
	if err != nil {
		metrics.CartLoadsTotal.WithLabelValues("error").Inc()
		log.Printf("cart: load %s: %v", a.key, err)
		return nil
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		metrics.CartLoadsTotal.WithLabelValues("corrupt").Inc()
		log.Printf("cart: decode %s: %v", a.key, err)
		return nil
	}
	metrics.CartLoadsTotal.WithLabelValues("ok").Inc()
	return items
}

// Save encodes the full line-item set and replaces any previous value
// under the archive's key.
func (a *Archive) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, a.key, string(raw))
}
