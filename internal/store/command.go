package store

import "github.com/musemart/musemart-backend/pkg/domain"

// CommandKind enumerates the closed set of state transitions.
type CommandKind string

const (
	CommandUserAdd    CommandKind = "user/add"
	CommandUserUpdate CommandKind = "user/update"
	CommandUserRemove CommandKind = "user/remove"

	CommandOrderAdd    CommandKind = "order/add"
	CommandOrderUpdate CommandKind = "order/update"
	CommandOrderRemove CommandKind = "order/remove"

	CommandReviewAdd    CommandKind = "review/add"
	CommandReviewUpdate CommandKind = "review/update"
	CommandReviewRemove CommandKind = "review/remove"

	CommandAddressAdd        CommandKind = "address/add"
	CommandAddressUpdate     CommandKind = "address/update"
	CommandAddressRemove     CommandKind = "address/remove"
	CommandAddressSetDefault CommandKind = "address/set_default"

	CommandCartAdd            CommandKind = "cart/add"
	CommandCartRemove         CommandKind = "cart/remove"
	CommandCartUpdateQuantity CommandKind = "cart/update_quantity"
	CommandCartClear          CommandKind = "cart/clear"
)

// Command is one tagged-variant mutation. Only the fields relevant to
// its Kind are populated.
type Command struct {
	Kind CommandKind

	User    *domain.User
	Order   *domain.Order
	Review  *domain.Review
	Address *domain.Address
	Product *domain.Product

	// ID targets remove/update-by-id variants.
	ID string

	// Cart and default-address payloads.
	ProductID string
	Quantity  int
	AddressID string
	UserID    string
}

// Apply is the pure state transition. It is total: unknown kinds, nil
// payloads, and absent ids all return the state unchanged. Every branch
// that mutates builds fresh slices; the input state is never written.
func Apply(state State, cmd Command) State {
	switch cmd.Kind {
	case CommandUserAdd:
		if cmd.User == nil {
			return state
		}
		state.Users = prepend(state.Users, *cmd.User)
		return state

	case CommandUserUpdate:
		if cmd.User == nil {
			return state
		}
		state.Users = replaceByID(state.Users, *cmd.User, func(u domain.User) string { return u.ID })
		return state

	case CommandUserRemove:
		// Cascade: nothing may reference a user that no longer exists.
		state.Users = removeByID(state.Users, cmd.ID, func(u domain.User) string { return u.ID })
		state.Orders = filter(state.Orders, func(o domain.Order) bool { return o.UserID != cmd.ID })
		state.Reviews = filter(state.Reviews, func(r domain.Review) bool { return r.UserID != cmd.ID })
		state.Addresses = filter(state.Addresses, func(a domain.Address) bool { return a.UserID != cmd.ID })
		return state

	case CommandOrderAdd:
		if cmd.Order == nil {
			return state
		}
		state.Orders = prepend(state.Orders, *cmd.Order)
		return state

	case CommandOrderUpdate:
		if cmd.Order == nil {
			return state
		}
		state.Orders = replaceByID(state.Orders, *cmd.Order, func(o domain.Order) string { return o.ID })
		return state

	case CommandOrderRemove:
		state.Orders = removeByID(state.Orders, cmd.ID, func(o domain.Order) string { return o.ID })
		return state

	case CommandReviewAdd:
		if cmd.Review == nil {
			return state
		}
		state.Reviews = prepend(state.Reviews, *cmd.Review)
		return state

	case CommandReviewUpdate:
		if cmd.Review == nil {
			return state
		}
		state.Reviews = replaceByID(state.Reviews, *cmd.Review, func(r domain.Review) string { return r.ID })
		return state

	case CommandReviewRemove:
		state.Reviews = removeByID(state.Reviews, cmd.ID, func(r domain.Review) string { return r.ID })
		return state

	case CommandAddressAdd:
		if cmd.Address == nil {
			return state
		}
		state.Addresses = prepend(state.Addresses, *cmd.Address)
		return state

	case CommandAddressUpdate:
		if cmd.Address == nil {
			return state
		}
		state.Addresses = replaceByID(state.Addresses, *cmd.Address, func(a domain.Address) string { return a.ID })
		return state

	case CommandAddressRemove:
		state.Addresses = removeByID(state.Addresses, cmd.ID, func(a domain.Address) string { return a.ID })
		return state

	case CommandAddressSetDefault:
		// Exclusive default per owner; other users' addresses untouched.
		next := make([]domain.Address, len(state.Addresses))
		for i, addr := range state.Addresses {
			if addr.UserID == cmd.UserID {
				addr.IsDefault = addr.ID == cmd.AddressID
			}
			next[i] = addr
		}
		state.Addresses = next
		return state

	case CommandCartAdd:
		if cmd.Product == nil {
			return state
		}
		for i, item := range state.Cart {
			if item.ProductID == cmd.Product.ID {
				next := make([]domain.CartItem, len(state.Cart))
				copy(next, state.Cart)
				next[i].Quantity++
				state.Cart = next
				return state
			}
		}
		next := make([]domain.CartItem, 0, len(state.Cart)+1)
		next = append(next, state.Cart...)
		next = append(next, domain.CartItem{ProductID: cmd.Product.ID, Quantity: 1})
		state.Cart = next
		return state

	case CommandCartRemove:
		state.Cart = filter(state.Cart, func(item domain.CartItem) bool { return item.ProductID != cmd.ProductID })
		return state

	case CommandCartUpdateQuantity:
		next := make([]domain.CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ProductID == cmd.ProductID {
				item.Quantity = cmd.Quantity
			}
			if item.Quantity > 0 {
				next = append(next, item)
			}
		}
		state.Cart = next
		return state

	case CommandCartClear:
		state.Cart = nil
		return state
	}

	return state
}

func prepend[T any](items []T, value T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, value)
	next = append(next, items...)
	return next
}

func replaceByID[T any](items []T, value T, id func(T) string) []T {
	next := make([]T, len(items))
	copy(next, items)
	target := id(value)
	for i := range next {
		if id(next[i]) == target {
			next[i] = value
		}
	}
	return next
}

func removeByID[T any](items []T, target string, id func(T) string) []T {
	return filter(items, func(item T) bool { return id(item) != target })
}

func filter[T any](items []T, keep func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			next = append(next, item)
		}
	}
	return next
}
