package models

type Restaurant struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Product is a menu item scoped to one restaurant
type Product struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
