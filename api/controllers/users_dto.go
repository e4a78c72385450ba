package controllers

import (
	"time"

	"github.com/musemart/musemart-backend/internal/store"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
)

// userResponse is the wire shape of an account. The stored entity
// carries the plaintext credential; it must never appear in a response
// body, so every handler maps through this type instead of serializing
// domain.User directly.
type userResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       *string            `json:"phone,omitempty"`
	Role        enums.UserRole     `json:"role"`
	Status      enums.UserStatus   `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	LastLogin   *time.Time         `json:"lastLogin,omitempty"`
	Permissions []enums.Permission `json:"permissions,omitempty"`
	Department  *string            `json:"department,omitempty"`
	Position    *string            `json:"position,omitempty"`
}

type enhancedUserResponse struct {
	userResponse
	Orders    []domain.Order   `json:"orders"`
	Reviews   []domain.Review  `json:"reviews"`
	Addresses []domain.Address `json:"addresses"`
	Stats     store.UserStats  `json:"stats"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
		Permissions: u.Permissions,
		Department:  u.Department,
		Position:    u.Position,
	}
}

// toUserResponsePtr keeps nil for "no session" payloads.
func toUserResponsePtr(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	out := toUserResponse(*u)
	return &out
}

func toEnhancedUserResponse(e store.EnhancedUser) enhancedUserResponse {
	return enhancedUserResponse{
		userResponse: toUserResponse(e.User),
		Orders:       e.Orders,
		Reviews:      e.Reviews,
		Addresses:    e.Addresses,
		Stats:        e.Stats,
	}
}

func toEnhancedUserResponses(list []store.EnhancedUser) []enhancedUserResponse {
	out := make([]enhancedUserResponse, len(list))
	for i, e := range list {
		out[i] = toEnhancedUserResponse(e)
	}
	return out
}
