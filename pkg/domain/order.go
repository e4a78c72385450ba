package domain

import (
	"time"

	"github.com/musemart/musemart-backend/pkg/enums"
)

// OrderItem is a line item holding price and name snapshots taken at
// order creation; later catalog edits never rewrite history.
type OrderItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
}

// Order belongs to exactly one user. The shipping address is copied, not
// referenced, so removing or editing the address leaves the order intact.
type Order struct {
	ID                string              `json:"id"`
	UserID            string              `json:"userId"`
	OrderNumber       string              `json:"orderNumber"`
	Items             []OrderItem         `json:"items"`
	TotalAmount       int                 `json:"totalAmount"`
	Status            enums.OrderStatus   `json:"status"`
	PaymentMethod     enums.PaymentMethod `json:"paymentMethod"`
	PaymentStatus     enums.PaymentStatus `json:"paymentStatus"`
	ShippingAddress   Address             `json:"shippingAddress"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
	EstimatedDelivery *time.Time          `json:"estimatedDelivery,omitempty"`
}

// Clone returns a deep copy safe to hand outside the store.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	out.EstimatedDelivery = copyTimePtr(o.EstimatedDelivery)
	return out
}

// LineTotal returns quantity times the snapshotted unit price.
func (i OrderItem) LineTotal() int {
	return i.Price * i.Quantity
}
