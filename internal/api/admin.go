package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meera-jewels/meera/internal/admin"
)

type adminAPIHandler struct {
	dashboard *admin.Dashboard
	inventory *admin.Inventory
	returns   *admin.Returns
	analytics *admin.Analytics
	customers *admin.Customers
}

func registerAdminRoutes(r chi.Router, d *admin.Dashboard, inv *admin.Inventory, ret *admin.Returns, an *admin.Analytics, cu *admin.Customers) {
	h := &adminAPIHandler{dashboard: d, inventory: inv, returns: ret, analytics: an, customers: cu}
	r.Get("/admin/dashboard", h.Dashboard)
	r.Get("/admin/inventory", h.Inventory)
	r.Get("/admin/returns", h.Returns)
	r.Put("/admin/returns/{id}/status", h.UpdateReturnStatus)
	r.Get("/admin/analytics", h.Analytics)
	r.Get("/admin/customers", h.Customers)
}

type dashboardResponse struct {
	Stats         []admin.Stat          `json:"stats"`
	MonthlySeries []admin.MonthlySales  `json:"monthlySeries"`
	RecentOrders  []admin.RecentOrder   `json:"recentOrders"`
	LowStock      []admin.LowStockAlert `json:"lowStock"`
}

// Dashboard returns the console's landing view.
// GET /api/v1/admin/dashboard
func (h *adminAPIHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboardResponse{
		Stats:         h.dashboard.Stats(),
		MonthlySeries: h.dashboard.MonthlySeries(),
		RecentOrders:  h.dashboard.RecentOrders(),
		LowStock:      h.dashboard.LowStockAlerts(),
	})
}

type inventoryItem struct {
	admin.InventoryItem
	Status     string `json:"status"`
	TotalValue int64  `json:"totalValue"`
}

type inventoryResponse struct {
	Items   []inventoryItem        `json:"items"`
	Summary admin.InventorySummary `json:"summary"`
}

// Inventory returns stock levels filtered by status and search term.
// GET /api/v1/admin/inventory?status=&q=
func (h *adminAPIHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	items := h.inventory.List(r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	out := make([]inventoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, inventoryItem{
			InventoryItem: it,
			Status:        it.Status(),
			TotalValue:    it.TotalValue(),
		})
	}
	writeJSON(w, http.StatusOK, inventoryResponse{Items: out, Summary: h.inventory.Summary()})
}

type returnsResponse struct {
	Returns []admin.Return       `json:"returns"`
	Summary admin.ReturnsSummary `json:"summary"`
}

// Returns lists return requests filtered by status and search term.
// GET /api/v1/admin/returns?status=&q=
func (h *adminAPIHandler) Returns(w http.ResponseWriter, r *http.Request) {
	list := h.returns.List(r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	if list == nil {
		list = []admin.Return{}
	}
	writeJSON(w, http.StatusOK, returnsResponse{Returns: list, Summary: h.returns.Summary()})
}

type updateReturnRequest struct {
	Status string `json:"status"`
}

// UpdateReturnStatus moves a return request through its workflow.
// PUT /api/v1/admin/returns/{id}/status
func (h *adminAPIHandler) UpdateReturnStatus(w http.ResponseWriter, r *http.Request) {
	var req updateReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}

	ret, err := h.returns.UpdateStatus(chi.URLParam(r, "id"), req.Status)
	if errors.Is(err, admin.ErrReturnNotFound) {
		writeError(w, http.StatusNotFound, "return not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, ret)
}

type analyticsResponse struct {
	MonthlySeries   []admin.MonthlySales   `json:"monthlySeries"`
	CategoryShares  []admin.CategoryShare  `json:"categoryShares"`
	TopProducts     []admin.TopProduct     `json:"topProducts"`
	CustomerMetrics []admin.CustomerMetric `json:"customerMetrics"`
}

// Analytics returns the reporting view, windowed by range.
// GET /api/v1/admin/analytics?range=7days|30days|90days|1year
func (h *adminAPIHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analyticsResponse{
		MonthlySeries:   h.analytics.MonthlySeries(r.URL.Query().Get("range")),
		CategoryShares:  h.analytics.CategoryShares(),
		TopProducts:     h.analytics.TopProducts(),
		CustomerMetrics: h.analytics.CustomerMetrics(),
	})
}

type customersResponse struct {
	Customers []admin.Customer       `json:"customers"`
	Summary   admin.CustomersSummary `json:"summary"`
}

// Customers lists customers matching the search term.
// GET /api/v1/admin/customers?q=
func (h *adminAPIHandler) Customers(w http.ResponseWriter, r *http.Request) {
	list := h.customers.List(r.URL.Query().Get("q"))
	if list == nil {
		list = []admin.Customer{}
	}
	writeJSON(w, http.StatusOK, customersResponse{Customers: list, Summary: h.customers.Summary()})
}
