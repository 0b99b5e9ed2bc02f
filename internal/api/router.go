package api

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meera-jewels/meera/internal/admin"
	"github.com/meera-jewels/meera/internal/auth"
	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/catalog"
	"github.com/meera-jewels/meera/internal/checkout"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthManager    *auth.Manager
	AuthMiddleware *auth.Middleware
	Carts          *cart.Manager
	Catalog        *catalog.Catalog
	Checkout       *checkout.Service
	Inventory      *admin.Inventory
	Returns        *admin.Returns
	Analytics      *admin.Analytics
	Dashboard      *admin.Dashboard
	Customers      *admin.Customers
}

// NewRouter assembles the full chi router: standard middleware, session
// load/save, liveness, metrics, and the /api/v1 sub-router.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api/v1", NewAPIRouter(deps))

	return r
}

// NewAPIRouter creates the chi sub-router for /api/v1. All routes return
// application/json. The storefront routes (catalog, cart, auth) need no
// login; checkout needs a session, the admin console needs an admin role.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	registerAuthRoutes(r, deps.SessionManager, deps.AuthManager)
	registerCatalogRoutes(r, deps.Catalog)
	registerCartRoutes(r, deps.SessionManager, deps.Carts, deps.Catalog)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		registerCheckoutRoutes(r, deps.SessionManager, deps.Checkout)
	})

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Use(deps.AuthMiddleware.RequireAdmin)
		registerAdminRoutes(r, deps.Dashboard, deps.Inventory, deps.Returns, deps.Analytics, deps.Customers)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
