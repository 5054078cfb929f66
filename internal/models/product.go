package models

// Product categories, assigned cyclically by generation index.
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryBooks       = "Books"
)

// Categories lists the category cycle in generation order.
var Categories = []string{CategoryElectronics, CategoryClothing, CategoryBooks}

// Product is one row of the dashboard table.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// ProductPage is a single page of products plus the filtered (pre-pagination) count.
type ProductPage struct {
	Items []Product `json:"data"`
	Total int       `json:"total"`
}

// CategoryCount is one bar of the category chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
