package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/middleware"
	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	usersvc "github.com/musemart/musemart-backend/internal/users"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
	"github.com/musemart/musemart-backend/pkg/logger"
)

type adminCreateUserRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=120"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6,max=128"`
	Role       string  `json:"role" validate:"required"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=120"`
	Position   *string `json:"position,omitempty" validate:"omitempty,max=120"`
}

type adminUpdateUserRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Role       *string `json:"role,omitempty"`
	Status     *string `json:"status,omitempty"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=120"`
	Position   *string `json:"position,omitempty" validate:"omitempty,max=120"`
}

// AdminListUsers serves every account with order, review and address
// aggregates joined in.
func AdminListUsers(svc usersvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, toEnhancedUserResponses(svc.List()))
	}
}

func AdminGetUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(chi.URLParam(r, "userId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toEnhancedUserResponse(*user))
	}
}

func AdminCreateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminCreateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseUserRole(payload.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown role"))
			return
		}

		created, createErr := svc.Create(usersvc.CreateInput{
			Name:       payload.Name,
			Email:      payload.Email,
			Password:   payload.Password,
			Role:       role,
			Department: payload.Department,
			Position:   payload.Position,
		})
		if createErr != nil {
			responses.WriteError(r.Context(), logg, w, createErr)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toUserResponsePtr(created))
	}
}

func AdminUpdateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminUpdateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := usersvc.UpdateInput{
			Name:       payload.Name,
			Email:      payload.Email,
			Department: payload.Department,
			Position:   payload.Position,
		}
		if payload.Role != nil {
			role, err := enums.ParseUserRole(*payload.Role)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown role"))
				return
			}
			input.Role = &role
		}
		if payload.Status != nil {
			status, err := enums.ParseUserStatus(*payload.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown status"))
				return
			}
			input.Status = &status
		}

		updated, err := svc.Update(chi.URLParam(r, "userId"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toUserResponsePtr(updated))
	}
}

// AdminDeleteUser removes the account and everything it owns. Deleting
// yourself is rejected so an admin cannot lock the back office.
func AdminDeleteUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.CurrentUserFromContext(r.Context())
		id := chi.URLParam(r, "userId")
		if actor != nil && actor.ID == id {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "cannot delete your own account"))
			return
		}
		if err := svc.Delete(id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func AdminSetUserStatus(svc usersvc.Service, status enums.UserStatus, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := svc.SetStatus(chi.URLParam(r, "userId"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toUserResponsePtr(updated))
	}
}
