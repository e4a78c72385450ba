package users

import (
	"fmt"
	"time"

	"github.com/musemart/musemart-backend/internal/store"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

type directory interface {
	Users() []domain.User
	UserByID(id string) *domain.User
	UserByEmail(email string) *domain.User
	AddUser(u domain.User)
	UpdateUser(u domain.User)
	RemoveUser(id string)
	EnhancedUser(id string) *store.EnhancedUser
	EnhancedUsers() []store.EnhancedUser
}

// Service is the account management surface: the admin user list plus
// self-service profile edits.
type Service interface {
	List() []store.EnhancedUser
	Get(id string) (*store.EnhancedUser, error)
	Create(input CreateInput) (*domain.User, error)
	Update(id string, input UpdateInput) (*domain.User, error)
	SetStatus(id string, status enums.UserStatus) (*domain.User, error)
	// Delete removes the account and everything it owns.
	Delete(id string) error
	UpdateProfile(id string, input ProfileInput) (*domain.User, error)
}

// CreateInput is the admin user-creation payload.
type CreateInput struct {
	Name       string
	Email      string
	Password   string
	Role       enums.UserRole
	Department *string
	Position   *string
}

// UpdateInput carries the admin-editable fields. Nil means unchanged.
type UpdateInput struct {
	Name       *string
	Email      *string
	Role       *enums.UserRole
	Status     *enums.UserStatus
	Department *string
	Position   *string
}

// ProfileInput carries the self-service profile fields.
type ProfileInput struct {
	Name  *string
	Phone *string
}

type service struct {
	store directory
	now   func() time.Time
}

// NewService builds a user management service over the domain store.
func NewService(store directory, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("domain store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}, nil
}

func (s *service) List() []store.EnhancedUser {
	return s.store.EnhancedUsers()
}

func (s *service) Get(id string) (*store.EnhancedUser, error) {
	enhanced := s.store.EnhancedUser(id)
	if enhanced == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return enhanced, nil
}

func (s *service) Create(input CreateInput) (*domain.User, error) {
	if !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown role")
	}
	if s.store.UserByEmail(input.Email) != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}
	user := domain.User{
		ID:          domain.NewID(domain.PrefixUser),
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		Role:        input.Role,
		Status:      enums.UserStatusActive,
		CreatedAt:   s.now(),
		Department:  input.Department,
		Position:    input.Position,
		Permissions: enums.PermissionsForRole(input.Role),
	}
	s.store.AddUser(user)
	return &user, nil
}

func (s *service) Update(id string, input UpdateInput) (*domain.User, error) {
	user := s.store.UserByID(id)
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if input.Email != nil && !user.EmailMatches(*input.Email) {
		if s.store.UserByEmail(*input.Email) != nil {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown role")
		}
		user.Role = *input.Role
		user.Permissions = enums.PermissionsForRole(*input.Role)
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown status")
		}
		user.Status = *input.Status
	}
	if input.Department != nil {
		user.Department = input.Department
	}
	if input.Position != nil {
		user.Position = input.Position
	}
	s.store.UpdateUser(*user)
	return user, nil
}

func (s *service) SetStatus(id string, status enums.UserStatus) (*domain.User, error) {
	return s.Update(id, UpdateInput{Status: &status})
}

func (s *service) Delete(id string) error {
	if s.store.UserByID(id) == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	s.store.RemoveUser(id)
	return nil
}

func (s *service) UpdateProfile(id string, input ProfileInput) (*domain.User, error) {
	user := s.store.UserByID(id)
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	s.store.UpdateUser(*user)
	return user, nil
}
