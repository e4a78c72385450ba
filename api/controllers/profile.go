package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/middleware"
	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	addresssvc "github.com/musemart/musemart-backend/internal/address"
	usersvc "github.com/musemart/musemart-backend/internal/users"
	"github.com/musemart/musemart-backend/pkg/logger"
)

type profileUpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type addressRequest struct {
	Title      string `json:"title" validate:"required,max=60"`
	FullName   string `json:"fullName" validate:"required,max=120"`
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=80"`
	PostalCode string `json:"postalCode" validate:"required,max=16"`
	Country    string `json:"country" validate:"required,max=80"`
	Phone      string `json:"phone" validate:"required,max=32"`
	IsDefault  bool   `json:"isDefault"`
}

// Profile serves the signed-in user with order history, reviews,
// addresses and derived stats.
func Profile(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		enhanced, err := svc.Get(user.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toEnhancedUserResponse(*enhanced))
	}
}

func UpdateProfile(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())

		var payload profileUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateProfile(user.ID, usersvc.ProfileInput{
			Name:  payload.Name,
			Phone: payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toUserResponsePtr(updated))
	}
}

func ListAddresses(svc addresssvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		responses.WriteSuccess(w, svc.ListForUser(user.ID))
	}
}

func CreateAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())

		var payload addressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(user.ID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func UpdateAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())

		var payload addressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(chi.URLParam(r, "addressId"), user.ID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func DeleteAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		if err := svc.Delete(chi.URLParam(r, "addressId"), user.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func SetDefaultAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		if err := svc.SetDefault(chi.URLParam(r, "addressId"), user.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.ListForUser(user.ID))
	}
}

func (p addressRequest) toInput() addresssvc.Input {
	return addresssvc.Input{
		Title:      p.Title,
		FullName:   p.FullName,
		Street:     p.Street,
		City:       p.City,
		PostalCode: p.PostalCode,
		Country:    p.Country,
		Phone:      p.Phone,
		IsDefault:  p.IsDefault,
	}
}
