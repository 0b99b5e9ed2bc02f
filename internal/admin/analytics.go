package admin

type MonthlySales struct {
	Month     string `json:"month"`
	Sales     int64  `json:"sales"`
	Orders    int    `json:"orders"`
	Customers int    `json:"customers"`
}

type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TopProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue int64  `json:"revenue"`
}

type CustomerMetric struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// Analytics serves the console's reporting figures. The monthly series is
// fixed demo data; the date range only windows how many trailing months
// come back.
type Analytics struct {
	monthly []MonthlySales
}

func NewAnalytics() *Analytics {
	return &Analytics{monthly: []MonthlySales{
		{Month: "Jan", Sales: 850000, Orders: 45, Customers: 38},
		{Month: "Feb", Sales: 920000, Orders: 52, Customers: 45},
		{Month: "Mar", Sales: 780000, Orders: 38, Customers: 32},
		{Month: "Apr", Sales: 1050000, Orders: 61, Customers: 55},
		{Month: "May", Sales: 1240000, Orders: 75, Customers: 68},
		{Month: "Jun", Sales: 1350000, Orders: 89, Customers: 78},
	}}
}

// MonthlySeries returns the trailing window for the given range key:
// 7days and 30days show the latest month, 90days the latest three, and
// anything else the full series.
func (a *Analytics) MonthlySeries(dateRange string) []MonthlySales {
	n := len(a.monthly)
	var window []MonthlySales
	switch dateRange {
	case "7days", "30days":
		window = a.monthly[n-1:]
	case "90days":
		window = a.monthly[n-3:]
	default:
		window = a.monthly
	}
	// Copy so callers can never reach the seed data through the result.
	out := make([]MonthlySales, len(window))
	copy(out, window)
	return out
}

func (a *Analytics) CategoryShares() []CategoryShare {
	return []CategoryShare{
		{Name: "Necklaces", Value: 35},
		{Name: "Earrings", Value: 25},
		{Name: "Rings", Value: 20},
		{Name: "Bangles", Value: 15},
		{Name: "Bracelets", Value: 5},
	}
}

func (a *Analytics) TopProducts() []TopProduct {
	return []TopProduct{
		{Name: "Royal Gold Necklace Set", Sales: 15, Revenue: 1875000},
		{Name: "Diamond Studded Earrings", Sales: 12, Revenue: 900000},
		{Name: "Emerald Gold Ring", Sales: 8, Revenue: 760000},
		{Name: "Traditional Silver Bangles", Sales: 10, Revenue: 350000},
		{Name: "Pearl Drop Earrings", Sales: 6, Revenue: 330000},
	}
}

func (a *Analytics) CustomerMetrics() []CustomerMetric {
	return []CustomerMetric{
		{Metric: "New Customers", Value: "45", Change: "+12.5%"},
		{Metric: "Returning Customers", Value: "78", Change: "+8.3%"},
		{Metric: "Customer Retention", Value: "68%", Change: "+5.2%"},
		{Metric: "Avg. Order Value", Value: "₹85,000", Change: "-2.1%"},
	}
}
