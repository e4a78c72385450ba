package domain

import "github.com/musemart/musemart-backend/pkg/enums"

// Product is a catalog listing. Immutable once the catalog is seeded;
// there is no product-edit operation in the store.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Brand       string                `json:"brand"`
	Category    enums.ProductCategory `json:"category"`
	Price       int                   `json:"price"`
	Currency    enums.Currency        `json:"currency"`
	Rating      float64               `json:"rating"`
	Reviews     int                   `json:"reviews"`
	Image       string                `json:"image"`
	Description string                `json:"description"`
	InStock     int                   `json:"inStock"`
}

// Category is a catalog navigation entry.
type Category struct {
	Key   enums.ProductCategory `json:"key"`
	Title string                `json:"title"`
	Icon  string                `json:"icon"`
}
