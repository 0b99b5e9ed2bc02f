package api

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/meera-jewels/meera/internal/auth"
	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/catalog"
	"github.com/meera-jewels/meera/internal/checkout"
)

type cartAPIHandler struct {
	sessions *scs.SessionManager
	carts    *cart.Manager
	catalog  *catalog.Catalog
}

// Cart routes need no login: guest carts are first-class, bound to the
// session cookie alone.
func registerCartRoutes(r chi.Router, sm *scs.SessionManager, carts *cart.Manager, c *catalog.Catalog) {
	h := &cartAPIHandler{sessions: sm, carts: carts, catalog: c}
	r.Get("/cart", h.Get)
	r.Post("/cart/items", h.AddItem)
	r.Put("/cart/items/{id}", h.UpdateQuantity)
	r.Delete("/cart/items/{id}", h.RemoveItem)
	r.Delete("/cart", h.Clear)
}

type cartResponse struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice int64           `json:"totalPrice"`
	GST        int64           `json:"gst"`
	GrandTotal int64           `json:"grandTotal"`
}

func (h *cartAPIHandler) store(r *http.Request) *cart.Store {
	clientID := auth.ClientID(r.Context(), h.sessions)
	return h.carts.For(r.Context(), clientID)
}

func toCartResponse(s *cart.Store) cartResponse {
	subtotal := s.TotalPrice()
	gst, total := checkout.Totals(subtotal)
	return cartResponse{
		Items:      s.Items(),
		TotalItems: s.TotalItems(),
		TotalPrice: subtotal,
		GST:        gst,
		GrandTotal: total,
	}
}

// Get returns the session's cart with derived totals.
// GET /api/v1/cart
func (h *cartAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(h.store(r)))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem upserts a catalog product into the cart. The product's display
// fields are captured here, at add time, and never re-synced.
// POST /api/v1/cart/items
func (h *cartAPIHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required", "VALIDATION_ERROR")
		return
	}
	p, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found", "NOT_FOUND")
		return
	}

	s := h.store(r)
	s.AddToCart(r.Context(), cart.Item{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Image:  p.Image,
		Weight: p.Weight,
		Purity: p.Purity,
	})
	writeJSON(w, http.StatusOK, toCartResponse(s))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets an absolute quantity for a line; zero or less
// removes it. Unknown ids are a no-op, not an error.
// PUT /api/v1/cart/items/{id}
func (h *cartAPIHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}

	s := h.store(r)
	s.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, toCartResponse(s))
}

// RemoveItem deletes a line. Idempotent.
// DELETE /api/v1/cart/items/{id}
func (h *cartAPIHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s := h.store(r)
	s.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, toCartResponse(s))
}

// Clear empties the cart.
// DELETE /api/v1/cart
func (h *cartAPIHandler) Clear(w http.ResponseWriter, r *http.Request) {
	s := h.store(r)
	s.ClearCart(r.Context())
	writeJSON(w, http.StatusOK, toCartResponse(s))
}
