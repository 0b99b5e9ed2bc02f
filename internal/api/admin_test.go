package api_test

import (
	"net/http"
	"testing"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t)
	base := env.Server.URL + "/api/v1"

	t.Run("unauthenticated", func(t *testing.T) {
		client := env.Client(t)
		if status := doJSON(t, client, http.MethodGet, base+"/admin/dashboard", nil, nil); status != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", status)
		}
	})

	t.Run("customer", func(t *testing.T) {
		client := env.Client(t)
		login(t, env, client, "john@example.com", "password123")
		if status := doJSON(t, client, http.MethodGet, base+"/admin/dashboard", nil, nil); status != http.StatusForbidden {
			t.Errorf("status = %d, want 403", status)
		}
	})

	t.Run("admin", func(t *testing.T) {
		client := env.Client(t)
		login(t, env, client, "admin@meerajewels.com", "admin123")
		if status := doJSON(t, client, http.MethodGet, base+"/admin/dashboard", nil, nil); status != http.StatusOK {
			t.Errorf("status = %d, want 200", status)
		}
	})
}

func TestAdminDashboard(t *testing.T) {
	env := newTestEnv(t)
	client := env.Client(t)
	login(t, env, client, "admin@meerajewels.com", "admin123")

	var body struct {
		Stats []struct {
			Title string `json:"title"`
			Value string `json:"value"`
		} `json:"stats"`
		MonthlySeries []struct {
			Month string `json:"month"`
			Sales int64  `json:"sales"`
		} `json:"monthlySeries"`
		RecentOrders []struct {
			ID string `json:"id"`
		} `json:"recentOrders"`
		LowStock []struct {
			Name string `json:"name"`
		} `json:"lowStock"`
	}
	doJSON(t, client, http.MethodGet, env.Server.URL+"/api/v1/admin/dashboard", nil, &body)

	if len(body.Stats) != 4 {
		t.Errorf("stats = %d, want 4", len(body.Stats))
	}
	if len(body.MonthlySeries) != 6 {
		t.Errorf("monthlySeries = %d, want 6", len(body.MonthlySeries))
	}
	if len(body.RecentOrders) != 3 || len(body.LowStock) != 3 {
		t.Errorf("recentOrders=%d lowStock=%d", len(body.RecentOrders), len(body.LowStock))
	}
}

func TestAdminInventoryFilter(t *testing.T) {
	env := newTestEnv(t)
	client := env.Client(t)
	login(t, env, client, "admin@meerajewels.com", "admin123")
	base := env.Server.URL + "/api/v1"

	var body struct {
		Items []struct {
			SKU    string `json:"sku"`
			Status string `json:"status"`
		} `json:"items"`
		Summary struct {
			LowStockItems   int `json:"lowStockItems"`
			OutOfStockItems int `json:"outOfStockItems"`
		} `json:"summary"`
	}
	doJSON(t, client, http.MethodGet, base+"/admin/inventory?status=Out+of+Stock", nil, &body)

	if len(body.Items) != 1 || body.Items[0].SKU != "EGR004" {
		t.Fatalf("filtered items = %+v", body.Items)
	}
	if body.Items[0].Status != "Out of Stock" {
		t.Errorf("status = %q", body.Items[0].Status)
	}
	if body.Summary.LowStockItems != 1 || body.Summary.OutOfStockItems != 1 {
		t.Errorf("summary = %+v", body.Summary)
	}
}

func TestAdminReturnWorkflow(t *testing.T) {
	env := newTestEnv(t)
	client := env.Client(t)
	login(t, env, client, "admin@meerajewels.com", "admin123")
	base := env.Server.URL + "/api/v1"

	var listing struct {
		Returns []struct {
			ID string `json:"id"`
		} `json:"returns"`
	}
	doJSON(t, client, http.MethodGet, base+"/admin/returns?q=priya", nil, &listing)
	if len(listing.Returns) != 1 || listing.Returns[0].ID != "RET001" {
		t.Fatalf("search listing = %+v", listing.Returns)
	}

	var ret struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		RefundAmount int64  `json:"refundAmount"`
	}
	status := doJSON(t, client, http.MethodPut, base+"/admin/returns/RET001/status",
		map[string]string{"status": "Rejected"}, &ret)
	if status != http.StatusOK {
		t.Fatalf("update: status %d", status)
	}
	if ret.Status != "Rejected" || ret.RefundAmount != 0 {
		t.Errorf("updated return = %+v", ret)
	}

	if status := doJSON(t, client, http.MethodPut, base+"/admin/returns/RET999/status",
		map[string]string{"status": "Approved"}, nil); status != http.StatusNotFound {
		t.Errorf("unknown return: status %d, want 404", status)
	}
	if status := doJSON(t, client, http.MethodPut, base+"/admin/returns/RET002/status",
		map[string]string{"status": "Lost"}, nil); status != http.StatusBadRequest {
		t.Errorf("invalid status: status %d, want 400", status)
	}
}

func TestAdminAnalyticsRange(t *testing.T) {
	env := newTestEnv(t)
	client := env.Client(t)
	login(t, env, client, "admin@meerajewels.com", "admin123")

	var body struct {
		MonthlySeries  []struct{} `json:"monthlySeries"`
		CategoryShares []struct{} `json:"categoryShares"`
		TopProducts    []struct{} `json:"topProducts"`
	}
	doJSON(t, client, http.MethodGet, env.Server.URL+"/api/v1/admin/analytics?range=90days", nil, &body)

	if len(body.MonthlySeries) != 3 {
		t.Errorf("90days series = %d months, want 3", len(body.MonthlySeries))
	}
	if len(body.CategoryShares) != 5 || len(body.TopProducts) != 5 {
		t.Errorf("shares=%d top=%d", len(body.CategoryShares), len(body.TopProducts))
	}
}
