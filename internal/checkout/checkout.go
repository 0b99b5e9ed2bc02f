// Package checkout turns a non-empty cart into an order confirmation.
// Payment is a timed no-op: the configured processing delay stands in for
// a gateway round trip, and no order is persisted anywhere.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/metrics"
)

var (
	// ErrEmptyCart is returned when checkout is submitted with no line items.
	ErrEmptyCart = errors.New("cart is empty")
)

// GST rate applied to the subtotal. Shipping is free.
const gstRate = 0.03

// ShippingInfo is the delivery address collected at step one of the flow.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Order is the confirmation returned to the client. It is the only record
// of the purchase; nothing is written to storage.
type Order struct {
	Number        string          `json:"number"`
	Items         []cart.LineItem `json:"items"`
	Subtotal      int64           `json:"subtotal"`
	GST           int64           `json:"gst"`
	Shipping      int64           `json:"shipping"`
	Total         int64           `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	PlacedAt      time.Time       `json:"placedAt"`
}

// Totals derives the GST amount and grand total for a subtotal. GST is
// rounded to the nearest whole unit, matching the storefront's summary.
func Totals(subtotal int64) (gst, total int64) {
	gst = int64(math.Round(float64(subtotal) * gstRate))
	return gst, subtotal + gst
}

// Service runs the simulated payment step against a client's cart store.
type Service struct {
	carts *cart.Manager
	delay time.Duration
}

func NewService(carts *cart.Manager, delay time.Duration) *Service {
	return &Service{carts: carts, delay: delay}
}

// Submit validates the cart, waits out the simulated payment delay, then
// clears the cart and returns the confirmation. Cancelling the context
// during the delay abandons the order with the cart untouched.
func (s *Service) Submit(ctx context.Context, clientID string, shipping ShippingInfo, paymentMethod string) (*Order, error) {
	store := s.carts.For(ctx, clientID)

	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	// Derive the subtotal from the snapshot itself so the confirmation
	// stays internally consistent even if the cart mutates mid-checkout.
	var subtotal int64
	for _, it := range items {
		subtotal += it.Price * int64(it.Quantity)
	}

	// Simulated payment processing.
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	gst, total := Totals(subtotal)
	order := &Order{
		Number:        newOrderNumber(),
		Items:         items,
		Subtotal:      subtotal,
		GST:           gst,
		Shipping:      0,
		Total:         total,
		PaymentMethod: paymentMethod,
		PlacedAt:      time.Now().UTC(),
	}

	store.ClearCart(ctx)
	metrics.OrdersTotal.Inc()
	return order, nil
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("ORD-%s", suffix[:10])
}
