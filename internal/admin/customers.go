package admin

import "strings"

const (
	CustomerVIP     = "VIP"
	CustomerRegular = "Regular"
	CustomerNew     = "New"
)

type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TotalOrders int    `json:"totalOrders"`
	TotalSpent  int64  `json:"totalSpent"`
	Status      string `json:"status"`
	Joined      string `json:"joined"`
}

type Customers struct {
	list []Customer
}

func NewCustomers() *Customers {
	return &Customers{list: []Customer{
		{ID: "1", Name: "Priya Sharma", Email: "priya@example.com", Phone: "+91 9876543211", TotalOrders: 5, TotalSpent: 450000, Status: CustomerVIP, Joined: "2023-03-12"},
		{ID: "2", Name: "Rajesh Kumar", Email: "rajesh@example.com", Phone: "+91 9876543212", TotalOrders: 3, TotalSpent: 275000, Status: CustomerRegular, Joined: "2023-07-22"},
		{ID: "3", Name: "Anita Gupta", Email: "anita@example.com", Phone: "+91 9876543213", TotalOrders: 8, TotalSpent: 680000, Status: CustomerVIP, Joined: "2022-11-04"},
		{ID: "4", Name: "Vikram Singh", Email: "vikram@example.com", Phone: "+91 9876543214", TotalOrders: 2, TotalSpent: 150000, Status: CustomerNew, Joined: "2024-01-02"},
	}}
}

// List returns customers whose name or email contains the search term.
func (c *Customers) List(search string) []Customer {
	q := strings.ToLower(search)
	var out []Customer
	for _, cu := range c.list {
		if q != "" &&
			!strings.Contains(strings.ToLower(cu.Name), q) &&
			!strings.Contains(strings.ToLower(cu.Email), q) {
			continue
		}
		out = append(out, cu)
	}
	return out
}

type CustomersSummary struct {
	TotalCustomers int   `json:"totalCustomers"`
	VIPCustomers   int   `json:"vipCustomers"`
	AvgOrderValue  int64 `json:"avgOrderValue"`
}

func (c *Customers) Summary() CustomersSummary {
	var s CustomersSummary
	s.TotalCustomers = len(c.list)
	var spent int64
	var orders int
	for _, cu := range c.list {
		if cu.Status == CustomerVIP {
			s.VIPCustomers++
		}
		spent += cu.TotalSpent
		orders += cu.TotalOrders
	}
	if orders > 0 {
		s.AvgOrderValue = int64(float64(spent)/float64(orders) + 0.5)
	}
	return s
}
