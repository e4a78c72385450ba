package store

import (
	"strings"
	"sync"

	"github.com/musemart/musemart-backend/pkg/domain"
)

// Store is the single authoritative container for all entity
// collections and the cart. Mutations dispatch commands through the
// pure Apply transition under a write lock; reads return deep-copied
// snapshots so no caller ever holds a live reference into the store.
//
// Every operation is total: updating or removing an absent id is a
// silent no-op, never an error.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New seeds a store with the provided initial state.
func New(initial State) *Store {
	return &Store{state: initial.Clone()}
}

func (s *Store) dispatch(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, cmd)
}

// AddUser inserts at the head of the user collection.
func (s *Store) AddUser(u domain.User) {
	s.dispatch(Command{Kind: CommandUserAdd, User: cloneUserPtr(u)})
}

// UpdateUser replaces the user whose id matches; no-op when absent.
func (s *Store) UpdateUser(u domain.User) {
	s.dispatch(Command{Kind: CommandUserUpdate, User: cloneUserPtr(u)})
}

// RemoveUser deletes the user and cascades over every order, review and
// address the user owns.
func (s *Store) RemoveUser(id string) {
	s.dispatch(Command{Kind: CommandUserRemove, ID: id})
}

// AddOrder inserts at the head of the order collection.
func (s *Store) AddOrder(o domain.Order) {
	clone := o.Clone()
	s.dispatch(Command{Kind: CommandOrderAdd, Order: &clone})
}

// UpdateOrder replaces the order whose id matches; no-op when absent.
func (s *Store) UpdateOrder(o domain.Order) {
	clone := o.Clone()
	s.dispatch(Command{Kind: CommandOrderUpdate, Order: &clone})
}

// RemoveOrder deletes by id only, without cascade.
func (s *Store) RemoveOrder(id string) {
	s.dispatch(Command{Kind: CommandOrderRemove, ID: id})
}

// AddReview inserts at the head of the review collection.
func (s *Store) AddReview(r domain.Review) {
	s.dispatch(Command{Kind: CommandReviewAdd, Review: &r})
}

// UpdateReview replaces the review whose id matches; no-op when absent.
func (s *Store) UpdateReview(r domain.Review) {
	s.dispatch(Command{Kind: CommandReviewUpdate, Review: &r})
}

// RemoveReview deletes by id only, without cascade.
func (s *Store) RemoveReview(id string) {
	s.dispatch(Command{Kind: CommandReviewRemove, ID: id})
}

// AddAddress inserts at the head of the address collection.
func (s *Store) AddAddress(a domain.Address) {
	s.dispatch(Command{Kind: CommandAddressAdd, Address: &a})
}

// UpdateAddress replaces the address whose id matches; no-op when absent.
func (s *Store) UpdateAddress(a domain.Address) {
	s.dispatch(Command{Kind: CommandAddressUpdate, Address: &a})
}

// RemoveAddress deletes by id only, without cascade.
func (s *Store) RemoveAddress(id string) {
	s.dispatch(Command{Kind: CommandAddressRemove, ID: id})
}

// SetDefaultAddress flags the matching address as the user's default and
// clears the flag on every other address of the same user.
func (s *Store) SetDefaultAddress(addressID, userID string) {
	s.dispatch(Command{Kind: CommandAddressSetDefault, AddressID: addressID, UserID: userID})
}

// AddToCart increments the quantity when the product is already carted,
// otherwise inserts a quantity-1 entry.
func (s *Store) AddToCart(p domain.Product) {
	s.dispatch(Command{Kind: CommandCartAdd, Product: &p})
}

// RemoveFromCart deletes the matching entry; no-op when absent.
func (s *Store) RemoveFromCart(productID string) {
	s.dispatch(Command{Kind: CommandCartRemove, ProductID: productID})
}

// UpdateCartQuantity sets the quantity; anything at or below zero prunes
// the entry entirely.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.dispatch(Command{Kind: CommandCartUpdateQuantity, ProductID: productID, Quantity: quantity})
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.dispatch(Command{Kind: CommandCartClear})
}

// Snapshot returns a deep copy of the entire state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Products returns the catalog in stored order.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.state.Products))
	copy(out, s.state.Products)
	return out
}

// ProductByID returns a copy of the matching product, or nil.
func (s *Store) ProductByID(id string) *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			out := p
			return &out
		}
	}
	return nil
}

// Users returns the user collection in stored order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		out = append(out, u.Clone())
	}
	return out
}

// UserByID returns a copy of the matching user, or nil.
func (s *Store) UserByID(id string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.ID == id {
			out := u.Clone()
			return &out
		}
	}
	return nil
}

// UserByEmail matches case-insensitively, returning a copy or nil.
func (s *Store) UserByEmail(email string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if strings.EqualFold(u.Email, email) {
			out := u.Clone()
			return &out
		}
	}
	return nil
}

// Orders returns the order collection in stored order.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.state.Orders))
	for _, o := range s.state.Orders {
		out = append(out, o.Clone())
	}
	return out
}

// OrderByID returns a copy of the matching order, or nil.
func (s *Store) OrderByID(id string) *domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.state.Orders {
		if o.ID == id {
			out := o.Clone()
			return &out
		}
	}
	return nil
}

// Reviews returns the review collection in stored order.
func (s *Store) Reviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.state.Reviews))
	copy(out, s.state.Reviews)
	return out
}

// Addresses returns the address collection in stored order.
func (s *Store) Addresses() []domain.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Address, len(s.state.Addresses))
	copy(out, s.state.Addresses)
	return out
}

// Cart returns the cart entries in stored order.
func (s *Store) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, len(s.state.Cart))
	copy(out, s.state.Cart)
	return out
}

func cloneUserPtr(u domain.User) *domain.User {
	clone := u.Clone()
	return &clone
}
