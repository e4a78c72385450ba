package domain

// CartItem is a (product, quantity) pair. Quantity is always at least 1
// while the entry exists; driving it to zero removes the entry.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
