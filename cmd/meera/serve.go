package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/meera-jewels/meera/internal/admin"
	"github.com/meera-jewels/meera/internal/api"
	"github.com/meera-jewels/meera/internal/auth"
	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/catalog"
	"github.com/meera-jewels/meera/internal/checkout"
	"github.com/meera-jewels/meera/internal/config"
	"github.com/meera-jewels/meera/internal/db"
	"github.com/meera-jewels/meera/internal/kv"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)

			kvStore := kv.NewSQLStore(database)
			registry := auth.NewRegistry()
			authManager := auth.NewManager(registry, kvStore)
			carts := cart.NewManager(kvStore)

			analytics := admin.NewAnalytics()
			router := api.NewRouter(api.Deps{
				SessionManager: sessionManager,
				AuthManager:    authManager,
				AuthMiddleware: auth.NewMiddleware(sessionManager, authManager),
				Carts:          carts,
				Catalog:        catalog.New(),
				Checkout:       checkout.NewService(carts, cfg.CheckoutDelay),
				Inventory:      admin.NewInventory(),
				Returns:        admin.NewReturns(),
				Analytics:      analytics,
				Dashboard:      admin.NewDashboard(analytics),
				Customers:      admin.NewCustomers(),
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
