package orders

import (
	"fmt"
	"time"

	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

const estimatedDeliveryDays = 5

type domainStore interface {
	UserByID(id string) *domain.User
	ProductByID(id string) *domain.Product
	Orders() []domain.Order
	OrderByID(id string) *domain.Order
	UserOrders(userID string) []domain.Order
	UserAddresses(userID string) []domain.Address
	Cart() []domain.CartItem
	AddOrder(o domain.Order)
	UpdateOrder(o domain.Order)
	RemoveOrder(id string)
	ClearCart()
}

// Service turns the current cart into orders and reads them back.
type Service interface {
	// PlaceOrder snapshots the cart into a new pending order for the
	// user and empties the cart. Line prices and the shipping address
	// are copied so later catalog or address edits never rewrite the
	// order.
	PlaceOrder(userID string, method enums.PaymentMethod) (*domain.Order, error)

	ListForUser(userID string) []domain.Order
	List() []domain.Order
	Get(id string) (*domain.Order, error)
	UpdateStatus(id string, status enums.OrderStatus) (*domain.Order, error)
	Cancel(id string, userID string) (*domain.Order, error)
}

type service struct {
	store domainStore
	now   func() time.Time
}

// NewService builds an order service over the domain store.
func NewService(store domainStore, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("domain store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}, nil
}

func (s *service) PlaceOrder(userID string, method enums.PaymentMethod) (*domain.Order, error) {
	user := s.store.UserByID(userID)
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	cart := s.store.Cart()
	if len(cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	shipping, err := s.shippingAddress(userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cart))
	total := 0
	for _, entry := range cart {
		product := s.store.ProductByID(entry.ProductID)
		if product == nil {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "carted product is no longer available").
				WithDetails(map[string]string{"productId": entry.ProductID})
		}
		item := domain.OrderItem{
			ID:          domain.NewID(domain.PrefixItem),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    entry.Quantity,
			Price:       product.Price,
			Image:       product.Image,
		}
		items = append(items, item)
		total += item.LineTotal()
	}

	at := s.now()
	eta := at.AddDate(0, 0, estimatedDeliveryDays)
	order := domain.Order{
		ID:                domain.NewID(domain.PrefixOrder),
		UserID:            userID,
		OrderNumber:       s.nextOrderNumber(),
		Items:             items,
		TotalAmount:       total,
		Status:            enums.OrderStatusPending,
		PaymentMethod:     method,
		PaymentStatus:     enums.PaymentStatusPending,
		ShippingAddress:   *shipping,
		CreatedAt:         at,
		UpdatedAt:         at,
		EstimatedDelivery: &eta,
	}

	s.store.AddOrder(order)
	s.store.ClearCart()
	return &order, nil
}

func (s *service) ListForUser(userID string) []domain.Order {
	return s.store.UserOrders(userID)
}

func (s *service) List() []domain.Order {
	return s.store.Orders()
}

func (s *service) Get(id string) (*domain.Order, error) {
	order := s.store.OrderByID(id)
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) UpdateStatus(id string, status enums.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	order := s.store.OrderByID(id)
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	order.Status = status
	order.UpdatedAt = s.now()
	s.store.UpdateOrder(*order)
	return order, nil
}

// Cancel is the buyer-facing transition: only the owner may cancel, and
// only while the order is still pending.
func (s *service) Cancel(id string, userID string) (*domain.Order, error) {
	order := s.store.OrderByID(id)
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user")
	}
	if order.Status != enums.OrderStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "only pending orders can be cancelled")
	}
	order.Status = enums.OrderStatusCancelled
	order.UpdatedAt = s.now()
	s.store.UpdateOrder(*order)
	return order, nil
}

func (s *service) shippingAddress(userID string) (*domain.Address, error) {
	addresses := s.store.UserAddresses(userID)
	if len(addresses) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no shipping address on file")
	}
	for _, a := range addresses {
		if a.IsDefault {
			return &a, nil
		}
	}
	return &addresses[0], nil
}

// nextOrderNumber continues the human-facing ORD-NNN sequence from the
// highest number already issued, so removing an order never hands its
// number to a later one.
func (s *service) nextOrderNumber() string {
	highest := 0
	for _, o := range s.store.Orders() {
		var n int
		if _, err := fmt.Sscanf(o.OrderNumber, "ORD-%d", &n); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("ORD-%03d", highest+1)
}
