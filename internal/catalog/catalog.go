// Package catalog is the storefront's product listing. The dataset is a
// fixed in-memory demo set; it is intentionally independent of the admin
// inventory figures, which track their own mock stock levels.
package catalog

import "strings"

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Weight   string  `json:"weight"`
	Purity   string  `json:"purity"`
}

// Catalog serves product lookups and filtered listings over the seeded set.
type Catalog struct {
	products []Product
}

func New() *Catalog {
	return &Catalog{products: seedProducts()}
}

// Categories a product may belong to, in display order.
func (c *Catalog) Categories() []string {
	return []string{"necklaces", "earrings", "rings", "bangles", "bracelets"}
}

// ByID returns the product with the given id, or false.
func (c *Catalog) ByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter narrows the listing. Zero values mean "no constraint"; MaxPrice 0
// leaves the range open above.
type Filter struct {
	Category string
	Search   string
	MinPrice int64
	MaxPrice int64
}

// List returns products matching the filter, in seed order.
func (c *Catalog) List(f Filter) []Product {
	var out []Product
	q := strings.ToLower(f.Search)
	for _, p := range c.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func seedProducts() []Product {
	return []Product{
		{
			ID:       "1",
			Name:     "Royal Gold Necklace Set",
			Price:    125000,
			Category: "necklaces",
			Image:    "https://images.pexels.com/photos/1616805/pexels-photo-1616805.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:   4.9,
			Weight:   "25.5g",
			Purity:   "22K Gold",
		},
		{
			ID:       "2",
			Name:     "Diamond Studded Earrings",
			Price:    75000,
			Category: "earrings",
			Image:    "https://images.pexels.com/photos/1721932/pexels-photo-1721932.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:   4.8,
			Weight:   "8.2g",
			Purity:   "18K Gold",
		},
		{
			ID:       "3",
			Name:     "Traditional Silver Bangles",
			Price:    35000,
			Category: "bangles",
			Image:    "https://images.pexels.com/photos/1616804/pexels-photo-1616804.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:   4.7,
			Weight:   "45.0g",
			Purity:   "92.5% Silver",
		},
		{
			ID:       "4",
			Name:     "Emerald Gold Ring",
			Price:    95000,
			Category: "rings",
			Image:    "https://images.pexels.com/photos/1721936/pexels-photo-1721936.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:   4.9,
			Weight:   "6.8g",
			Purity:   "22K Gold",
		},
		{
			ID:       "5",
			Name:     "Pearl Drop Earrings",
			Price:    55000,
			Category: "earrings",
			Image:    "https://images.pexels.com/photos/1721937/pexels-photo-1721937.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:   4.6,
			Weight:   "4.2g",
			Purity:   "18K Gold",
		},
		{
			ID:       "6",
			Name:     "Antique Gold Bracelet",
			Price:    85000,
			Category: "bracelets",
			Image:    "https://images.pexels.com/photos/1721938/pexels-photo-1721938.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:   4.8,
			Weight:   "18.5g",
			Purity:   "22K Gold",
		},
	}
}
