package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meera-jewels/meera/internal/admin"
	"github.com/meera-jewels/meera/internal/api"
	"github.com/meera-jewels/meera/internal/auth"
	"github.com/meera-jewels/meera/internal/cart"
	"github.com/meera-jewels/meera/internal/catalog"
	"github.com/meera-jewels/meera/internal/checkout"
	"github.com/meera-jewels/meera/internal/kv"
	"github.com/meera-jewels/meera/internal/testutil"
)

// testEnv runs the full router against an in-memory SQLite database with a
// zero-delay checkout. Each Client() is an independent browser: its own
// cookie jar, its own session, its own cart.
type testEnv struct {
	Server *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	kvStore := kv.NewSQLStore(db)
	registry := auth.NewRegistry()
	authManager := auth.NewManager(registry, kvStore)
	carts := cart.NewManager(kvStore)
	sessionManager := auth.NewSessionManager(db, "sqlite3", time.Hour, false)
	analytics := admin.NewAnalytics()

	router := api.NewRouter(api.Deps{
		SessionManager: sessionManager,
		AuthManager:    authManager,
		AuthMiddleware: auth.NewMiddleware(sessionManager, authManager),
		Carts:          carts,
		Catalog:        catalog.New(),
		Checkout:       checkout.NewService(carts, 0),
		Inventory:      admin.NewInventory(),
		Returns:        admin.NewReturns(),
		Analytics:      analytics,
		Dashboard:      admin.NewDashboard(analytics),
		Customers:      admin.NewCustomers(),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testEnv{Server: srv}
}

// Client returns an HTTP client with its own cookie jar.
func (env *testEnv) Client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (skipped when out is nil). Returns the status code.
func doJSON(t *testing.T, client *http.Client, method, url string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

// login authenticates the client's session with the given credentials.
func login(t *testing.T, env *testEnv, client *http.Client, email, password string) {
	t.Helper()
	status := doJSON(t, client, http.MethodPost, env.Server.URL+"/api/v1/auth/login",
		map[string]string{"email": email, "password": password}, nil)
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d", email, status)
	}
}
