package cart

import (
	"fmt"

	"github.com/musemart/musemart-backend/pkg/domain"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

type catalog interface {
	ProductByID(id string) *domain.Product
	Cart() []domain.CartItem
	AddToCart(p domain.Product)
	RemoveFromCart(productID string)
	UpdateCartQuantity(productID string, quantity int)
	ClearCart()
}

// Service exposes the shopping cart joined against the catalog.
type Service interface {
	View() View
	Add(productID string) error
	SetQuantity(productID string, quantity int) error
	Remove(productID string)
	Clear()
}

type service struct {
	store catalog
}

// NewService builds a cart service over the domain store.
func NewService(store catalog) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("domain store is required")
	}
	return &service{store: store}, nil
}

// Line is a cart entry joined with its catalog product.
type Line struct {
	Product   domain.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal int            `json:"lineTotal"`
}

// View is the cart as rendered to a buyer: joined lines plus the item
// count and amount totals.
type View struct {
	Lines       []Line `json:"lines"`
	TotalItems  int    `json:"totalItems"`
	TotalAmount int    `json:"totalAmount"`
}

func (s *service) View() View {
	view := View{Lines: []Line{}}
	for _, item := range s.store.Cart() {
		product := s.store.ProductByID(item.ProductID)
		if product == nil {
			// A carted product that left the catalog contributes
			// nothing. The entry stays until removed explicitly.
			continue
		}
		line := Line{
			Product:   *product,
			Quantity:  item.Quantity,
			LineTotal: product.Price * item.Quantity,
		}
		view.Lines = append(view.Lines, line)
		view.TotalItems += item.Quantity
		view.TotalAmount += line.LineTotal
	}
	return view
}

func (s *service) Add(productID string) error {
	product := s.store.ProductByID(productID)
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	s.store.AddToCart(*product)
	return nil
}

func (s *service) SetQuantity(productID string, quantity int) error {
	if s.store.ProductByID(productID) == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	s.store.UpdateCartQuantity(productID, quantity)
	return nil
}

func (s *service) Remove(productID string) {
	s.store.RemoveFromCart(productID)
}

func (s *service) Clear() {
	s.store.ClearCart()
}
