package controllers

import (
	"net/http"

	"github.com/musemart/musemart-backend/api/middleware"
	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	sessionsvc "github.com/musemart/musemart-backend/internal/session"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
	"github.com/musemart/musemart-backend/pkg/logger"
)

const invalidCredentialsMessage = "invalid email or password"

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// AuthLogin signs the user in. The failure reason stays private: the
// response never says whether the email or the password was wrong.
func AuthLogin(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !svc.Login(r.Context(), payload.Email, payload.Password) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage))
			return
		}

		responses.WriteSuccess(w, toUserResponsePtr(svc.CurrentUser()))
	}
}

func AuthRegister(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !svc.Register(r.Context(), payload.Name, payload.Email, payload.Password) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeConflict, "email already registered"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toUserResponsePtr(svc.CurrentUser()))
	}
}

func AuthLogout(svc sessionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// AuthMe reports the current session, including the loading flag the
// storefront polls while the session restores.
func AuthMe(svc sessionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"user":    toUserResponsePtr(middleware.CurrentUserFromContext(r.Context())),
			"loading": svc.Loading(),
		})
	}
}
