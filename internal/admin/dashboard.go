package admin

type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type RecentOrder struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Product  string `json:"product"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

type LowStockAlert struct {
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

// Dashboard aggregates the console's landing view: headline stats, the
// monthly series from analytics, recent orders, and low-stock alerts.
type Dashboard struct {
	analytics *Analytics
}

func NewDashboard(analytics *Analytics) *Dashboard {
	return &Dashboard{analytics: analytics}
}

func (d *Dashboard) Stats() []Stat {
	return []Stat{
		{Title: "Total Revenue", Value: "₹12,45,000", Change: "+12.5%"},
		{Title: "Total Orders", Value: "156", Change: "+8.2%"},
		{Title: "Total Products", Value: "89", Change: "+3.1%"},
		{Title: "Total Customers", Value: "234", Change: "+15.3%"},
	}
}

func (d *Dashboard) MonthlySeries() []MonthlySales {
	return d.analytics.MonthlySeries("")
}

func (d *Dashboard) RecentOrders() []RecentOrder {
	return []RecentOrder{
		{ID: "ORD001", Customer: "Priya Sharma", Product: "Royal Gold Necklace Set", Amount: 125000, Status: "Confirmed", Date: "2024-01-15"},
		{ID: "ORD002", Customer: "Rajesh Kumar", Product: "Diamond Studded Earrings", Amount: 75000, Status: "Shipped", Date: "2024-01-14"},
		{ID: "ORD003", Customer: "Anita Gupta", Product: "Traditional Silver Bangles", Amount: 35000, Status: "Delivered", Date: "2024-01-13"},
	}
}

func (d *Dashboard) LowStockAlerts() []LowStockAlert {
	return []LowStockAlert{
		{Name: "Gold Chain 22K", Stock: 2, Threshold: 5},
		{Name: "Silver Earrings", Stock: 1, Threshold: 3},
		{Name: "Diamond Ring", Stock: 3, Threshold: 5},
	}
}
