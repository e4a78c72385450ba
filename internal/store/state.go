package store

import "github.com/musemart/musemart-backend/pkg/domain"

// State is the complete entity state owned by the store: every
// collection plus the cart. Values are plain structs; mutations happen
// only through Apply, which returns a fresh State.
type State struct {
	Products  []domain.Product
	Users     []domain.User
	Orders    []domain.Order
	Reviews   []domain.Review
	Addresses []domain.Address
	Cart      []domain.CartItem
}

// Clone deep-copies the state so snapshots handed to consumers never
// alias the store's own slices.
func (s State) Clone() State {
	out := State{
		Products:  make([]domain.Product, len(s.Products)),
		Users:     make([]domain.User, 0, len(s.Users)),
		Orders:    make([]domain.Order, 0, len(s.Orders)),
		Reviews:   make([]domain.Review, len(s.Reviews)),
		Addresses: make([]domain.Address, len(s.Addresses)),
		Cart:      make([]domain.CartItem, len(s.Cart)),
	}
	copy(out.Products, s.Products)
	for _, u := range s.Users {
		out.Users = append(out.Users, u.Clone())
	}
	for _, o := range s.Orders {
		out.Orders = append(out.Orders, o.Clone())
	}
	copy(out.Reviews, s.Reviews)
	copy(out.Addresses, s.Addresses)
	copy(out.Cart, s.Cart)
	return out
}
