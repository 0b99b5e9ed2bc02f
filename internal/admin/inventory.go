// Package admin holds the console's mock datasets: inventory, returns,
// analytics, dashboard, and customers. These figures are demo data and are
// deliberately not reconciled with the storefront catalog.
package admin

import "strings"

const (
	StockIn  = "In Stock"
	StockLow = "Low Stock"
	StockOut = "Out of Stock"
)

type InventoryItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	CurrentStock  int    `json:"currentStock"`
	MinStock      int    `json:"minStock"`
	MaxStock      int    `json:"maxStock"`
	UnitPrice     int64  `json:"unitPrice"`
	Supplier      string `json:"supplier"`
	LastRestocked string `json:"lastRestocked"`
}

// Status derives the stock state from the current level against the
// minimum threshold.
func (i InventoryItem) Status() string {
	switch {
	case i.CurrentStock == 0:
		return StockOut
	case i.CurrentStock < i.MinStock:
		return StockLow
	default:
		return StockIn
	}
}

// TotalValue is current stock times unit price.
func (i InventoryItem) TotalValue() int64 {
	return int64(i.CurrentStock) * i.UnitPrice
}

type Inventory struct {
	items []InventoryItem
}

func NewInventory() *Inventory {
	return &Inventory{items: []InventoryItem{
		{
			ID: "1", Name: "Royal Gold Necklace Set", SKU: "RGN001",
			Category: "Necklaces", CurrentStock: 5, MinStock: 3, MaxStock: 15,
			UnitPrice: 125000, Supplier: "Rajasthan Crafts", LastRestocked: "2024-01-10",
		},
		{
			ID: "2", Name: "Diamond Studded Earrings", SKU: "DSE002",
			Category: "Earrings", CurrentStock: 8, MinStock: 5, MaxStock: 20,
			UnitPrice: 75000, Supplier: "Diamond House", LastRestocked: "2024-01-08",
		},
		{
			ID: "3", Name: "Traditional Silver Bangles", SKU: "TSB003",
			Category: "Bangles", CurrentStock: 2, MinStock: 5, MaxStock: 25,
			UnitPrice: 35000, Supplier: "Silver Works", LastRestocked: "2024-01-05",
		},
		{
			ID: "4", Name: "Emerald Gold Ring", SKU: "EGR004",
			Category: "Rings", CurrentStock: 0, MinStock: 3, MaxStock: 10,
			UnitPrice: 95000, Supplier: "Gem Palace", LastRestocked: "2023-12-20",
		},
	}}
}

// List filters by stock status ("" or "all" for everything) and a
// case-insensitive name/SKU search.
func (inv *Inventory) List(status, search string) []InventoryItem {
	q := strings.ToLower(search)
	var out []InventoryItem
	for _, it := range inv.items {
		if status != "" && status != "all" && it.Status() != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.SKU), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

type InventorySummary struct {
	TotalItems      int   `json:"totalItems"`
	LowStockItems   int   `json:"lowStockItems"`
	OutOfStockItems int   `json:"outOfStockItems"`
	TotalStockValue int64 `json:"totalStockValue"`
}

func (inv *Inventory) Summary() InventorySummary {
	var s InventorySummary
	s.TotalItems = len(inv.items)
	for _, it := range inv.items {
		switch it.Status() {
		case StockLow:
			s.LowStockItems++
		case StockOut:
			s.OutOfStockItems++
		}
		s.TotalStockValue += it.TotalValue()
	}
	return s
}
