package cart_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/kv"
)

func TestArchive_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []cart.LineItem
	}{
		{"empty", []cart.LineItem{}},
		{
			"single line",
			[]cart.LineItem{
				{ID: "1", Name: "Necklace", Price: 125000, Image: "x", Quantity: 2, Weight: "25.5g", Purity: "22K Gold"},
			},
		},
		{
			"multiple lines",
			[]cart.LineItem{
				{ID: "1", Name: "Necklace", Price: 125000, Image: "x", Quantity: 1},
				{ID: "2", Name: "Ring", Price: 95000, Image: "y", Quantity: 4, Purity: "22K Gold"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := cart.NewArchive(kv.NewMemoryStore(), "cart:rt")
			ctx := context.Background()

			if err := a.Save(ctx, tt.items); err != nil {
				t.Fatalf("save: %v", err)
			}
			got := a.Load(ctx)

			if len(got) == 0 && len(tt.items) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.items) {
				t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, tt.items)
			}
		})
	}
}

func TestArchive_AbsentKeyLoadsEmpty(t *testing.T) {
	a := cart.NewArchive(kv.NewMemoryStore(), "cart:none")
	if got := a.Load(context.Background()); len(got) != 0 {
		t.Errorf("load of absent key = %+v, want empty", got)
	}
}

func TestArchive_CorruptValueLoadsEmpty(t *testing.T) {
	mem := kv.NewMemoryStore()
	ctx := context.Background()
	if err := mem.Set(ctx, "cart:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	a := cart.NewArchive(mem, "cart:bad")
	if got := a.Load(ctx); len(got) != 0 {
		t.Errorf("load of corrupt value = %+v, want empty", got)
	}
}
