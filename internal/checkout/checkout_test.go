package checkout_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/checkout"
	"github.com/meera-jewels/meera/internal/kv"
)

func shipping() checkout.ShippingInfo {
	return checkout.ShippingInfo{
		FullName: "John Doe",
		Phone:    "+91 9876543210",
		Address:  "12 MG Road",
		City:     "Jaipur",
		State:    "Rajasthan",
		Pincode:  "302001",
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		subtotal int64
		wantGST  int64
	}{
		{125000, 3750},
		{250000, 7500},
		{0, 0},
		{33, 1},   // 0.99 rounds up
		{16, 0},   // 0.48 rounds down
		{85000, 2550},
	}

	for _, tt := range tests {
		gst, total := checkout.Totals(tt.subtotal)
		if gst != tt.wantGST {
			t.Errorf("Totals(%d) gst = %d, want %d", tt.subtotal, gst, tt.wantGST)
		}
		if total != tt.subtotal+tt.wantGST {
			t.Errorf("Totals(%d) total = %d, want %d", tt.subtotal, total, tt.subtotal+tt.wantGST)
		}
	}
}

func TestSubmit(t *testing.T) {
	carts := cart.NewManager(kv.NewMemoryStore())
	svc := checkout.NewService(carts, 0)
	ctx := context.Background()

	s := carts.For(ctx, "client")
	s.AddToCart(ctx, cart.Item{ID: "1", Name: "Necklace", Price: 125000, Image: "x"})
	s.AddToCart(ctx, cart.Item{ID: "1", Name: "Necklace", Price: 125000, Image: "x"})

	order, err := svc.Submit(ctx, "client", shipping(), "razorpay")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if order.Subtotal != 250000 {
		t.Errorf("subtotal = %d, want 250000", order.Subtotal)
	}
	if order.GST != 7500 {
		t.Errorf("gst = %d, want 7500", order.GST)
	}
	if order.Shipping != 0 {
		t.Errorf("shipping = %d, want 0 (free)", order.Shipping)
	}
	if order.Total != 257500 {
		t.Errorf("total = %d, want 257500", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Errorf("item snapshot = %+v", order.Items)
	}
	if !strings.HasPrefix(order.Number, "ORD-") {
		t.Errorf("order number = %q", order.Number)
	}

	// Checkout completion empties the cart.
	if got := s.TotalItems(); got != 0 {
		t.Errorf("cart totalItems after checkout = %d, want 0", got)
	}
}

func TestSubmit_SnapshotConsistentUnderConcurrentMutation(t *testing.T) {
	carts := cart.NewManager(kv.NewMemoryStore())
	svc := checkout.NewService(carts, 20*time.Millisecond)
	ctx := context.Background()

	s := carts.For(ctx, "client")
	s.AddToCart(ctx, cart.Item{ID: "1", Name: "Necklace", Price: 125000, Image: "x"})

	// Hammer the cart while the payment delay runs; the confirmation must
	// reflect a single snapshot, never a mix of before and after.
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				s.AddToCart(ctx, cart.Item{ID: "2", Name: "Ring", Price: 95000, Image: "y"})
				s.RemoveFromCart(ctx, "2")
			}
		}
	}()

	order, err := svc.Submit(ctx, "client", shipping(), "razorpay")
	close(stop)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var want int64
	for _, it := range order.Items {
		want += it.Price * int64(it.Quantity)
	}
	if order.Subtotal != want {
		t.Errorf("subtotal = %d, want %d (sum over the order's own items)", order.Subtotal, want)
	}
	wantGST, wantTotal := checkout.Totals(want)
	if order.GST != wantGST || order.Total != wantTotal {
		t.Errorf("gst/total = %d/%d, want %d/%d", order.GST, order.Total, wantGST, wantTotal)
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	carts := cart.NewManager(kv.NewMemoryStore())
	svc := checkout.NewService(carts, 0)

	_, err := svc.Submit(context.Background(), "client", shipping(), "razorpay")
	if !errors.Is(err, checkout.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestSubmit_CancelledDuringPayment(t *testing.T) {
	carts := cart.NewManager(kv.NewMemoryStore())
	svc := checkout.NewService(carts, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	s := carts.For(ctx, "client")
	s.AddToCart(ctx, cart.Item{ID: "1", Name: "Necklace", Price: 125000, Image: "x"})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, "client", shipping(), "razorpay")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("submit did not return after cancellation")
	}

	// Abandoned checkout leaves the cart untouched.
	if got := s.TotalItems(); got != 1 {
		t.Errorf("cart totalItems after cancel = %d, want 1", got)
	}
}
