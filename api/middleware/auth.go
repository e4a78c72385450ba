package middleware

import (
	"net/http"

	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
	"github.com/musemart/musemart-backend/pkg/logger"
)

type sessionReader interface {
	CurrentUser() *domain.User
}

// Session resolves the signed-in user, if any, and attaches it to the
// request context. Anonymous requests pass through untouched.
func Session(sessions sessionReader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := sessions.CurrentUser()
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithCurrentUser(r.Context(), user)
			if logg != nil {
				ctx = logg.WithUserID(ctx, user.ID)
				ctx = logg.WithRole(ctx, user.Role.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests and blocked accounts.
func RequireAuth(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUserFromContext(r.Context())
			if user == nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}
			if user.Status == enums.UserStatusBlocked {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "account is blocked"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission gates admin surfaces on the user's effective
// permission set. Must run inside RequireAuth.
func RequirePermission(perm enums.Permission, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUserFromContext(r.Context())
			if user == nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}
			if !user.HasPermission(perm) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "missing permission"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
