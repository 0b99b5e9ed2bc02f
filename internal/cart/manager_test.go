package cart_test

import (
	"context"
	"testing"

	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/kv"
)

func TestManager_OneStorePerClient(t *testing.T) {
	m := cart.NewManager(kv.NewMemoryStore())
	ctx := context.Background()

	a := m.For(ctx, "client-a")
	b := m.For(ctx, "client-b")

	a.AddToCart(ctx, cart.Item{ID: "1", Name: "Necklace", Price: 125000, Image: "x"})

	if got := b.TotalItems(); got != 0 {
		t.Errorf("client-b sees client-a's cart: totalItems = %d", got)
	}
	if again := m.For(ctx, "client-a"); again != a {
		t.Error("second For call returned a different store instance")
	}
	if got := a.TotalItems(); got != 1 {
		t.Errorf("client-a totalItems = %d, want 1", got)
	}
}
