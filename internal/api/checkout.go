package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/meera-jewels/meera/internal/auth"
	"github.com/meera-jewels/meera/internal/checkout"
)

type checkoutAPIHandler struct {
	sessions *scs.SessionManager
	checkout *checkout.Service
}

func registerCheckoutRoutes(r chi.Router, sm *scs.SessionManager, svc *checkout.Service) {
	h := &checkoutAPIHandler{sessions: sm, checkout: svc}
	r.Post("/checkout", h.Submit)
}

type checkoutRequest struct {
	Shipping      checkout.ShippingInfo `json:"shipping"`
	PaymentMethod string                `json:"paymentMethod"`
}

// Submit runs the simulated payment and returns the order confirmation.
// Requires a logged-in session and a non-empty cart.
// POST /api/v1/checkout
func (h *checkoutAPIHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	if req.Shipping.FullName == "" || req.Shipping.Phone == "" || req.Shipping.Address == "" ||
		req.Shipping.City == "" || req.Shipping.State == "" || req.Shipping.Pincode == "" {
		writeError(w, http.StatusBadRequest, "all shipping fields are required", "VALIDATION_ERROR")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "razorpay"
	}

	clientID := auth.ClientID(r.Context(), h.sessions)
	order, err := h.checkout.Submit(r.Context(), clientID, req.Shipping, req.PaymentMethod)
	if errors.Is(err, checkout.ErrEmptyCart) {
		writeError(w, http.StatusBadRequest, "cart is empty", "EMPTY_CART")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
