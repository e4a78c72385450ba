package address

import (
	"fmt"

	"github.com/musemart/musemart-backend/pkg/domain"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

type addressBook interface {
	UserByID(id string) *domain.User
	Addresses() []domain.Address
	UserAddresses(userID string) []domain.Address
	AddAddress(a domain.Address)
	UpdateAddress(a domain.Address)
	RemoveAddress(id string)
	SetDefaultAddress(addressID, userID string)
}

// Service manages a user's shipping addresses.
type Service interface {
	ListForUser(userID string) []domain.Address
	Create(userID string, input Input) (*domain.Address, error)
	Update(id string, userID string, input Input) (*domain.Address, error)
	Delete(id string, userID string) error
	// SetDefault makes the address the user's only default.
	SetDefault(id string, userID string) error
}

// Input is the address payload for create and update.
type Input struct {
	Title      string
	FullName   string
	Street     string
	City       string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
}

type service struct {
	store addressBook
}

// NewService builds an address service over the domain store.
func NewService(store addressBook) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("domain store is required")
	}
	return &service{store: store}, nil
}

func (s *service) ListForUser(userID string) []domain.Address {
	return s.store.UserAddresses(userID)
}

func (s *service) Create(userID string, input Input) (*domain.Address, error) {
	if s.store.UserByID(userID) == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	addr := domain.Address{
		ID:         domain.NewID(domain.PrefixAddress),
		UserID:     userID,
		Title:      input.Title,
		FullName:   input.FullName,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		Phone:      input.Phone,
	}
	s.store.AddAddress(addr)

	// The first address becomes the default automatically.
	if input.IsDefault || len(s.store.UserAddresses(userID)) == 1 {
		s.store.SetDefaultAddress(addr.ID, userID)
		addr.IsDefault = true
	}
	return &addr, nil
}

func (s *service) Update(id string, userID string, input Input) (*domain.Address, error) {
	existing, err := s.owned(id, userID)
	if err != nil {
		return nil, err
	}
	existing.Title = input.Title
	existing.FullName = input.FullName
	existing.Street = input.Street
	existing.City = input.City
	existing.PostalCode = input.PostalCode
	existing.Country = input.Country
	existing.Phone = input.Phone
	s.store.UpdateAddress(*existing)

	if input.IsDefault && !existing.IsDefault {
		s.store.SetDefaultAddress(id, userID)
		existing.IsDefault = true
	}
	return existing, nil
}

func (s *service) Delete(id string, userID string) error {
	if _, err := s.owned(id, userID); err != nil {
		return err
	}
	s.store.RemoveAddress(id)
	return nil
}

func (s *service) SetDefault(id string, userID string) error {
	if _, err := s.owned(id, userID); err != nil {
		return err
	}
	s.store.SetDefaultAddress(id, userID)
	return nil
}

func (s *service) owned(id string, userID string) (*domain.Address, error) {
	for _, a := range s.store.Addresses() {
		if a.ID != id {
			continue
		}
		if a.UserID != userID {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "address belongs to another user")
		}
		return &a, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
}
