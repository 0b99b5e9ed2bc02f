package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meera-jewels/meera/internal/catalog"
)

type catalogAPIHandler struct {
	catalog *catalog.Catalog
}

func registerCatalogRoutes(r chi.Router, c *catalog.Catalog) {
	h := &catalogAPIHandler{catalog: c}
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Get)
}

type productListResponse struct {
	Products   []catalog.Product `json:"products"`
	Categories []string          `json:"categories"`
}

// List returns the filtered product listing.
// GET /api/v1/products?category=&q=&min_price=&max_price=
func (h *catalogAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.Filter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "min_price must be a non-negative integer", "VALIDATION_ERROR")
			return
		}
		f.MinPrice = v
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "max_price must be a non-negative integer", "VALIDATION_ERROR")
			return
		}
		f.MaxPrice = v
	}

	products := h.catalog.List(f)
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, productListResponse{
		Products:   products,
		Categories: h.catalog.Categories(),
	})
}

// Get returns one product.
// GET /api/v1/products/{id}
func (h *catalogAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
