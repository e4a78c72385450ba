package domain

import "time"

// Review is a customer's product rating. ProductName is a snapshot, like
// order line items.
type Review struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	IsVerified  bool      `json:"isVerified"`
}
