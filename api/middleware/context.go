package middleware

import (
	"context"

	"github.com/musemart/musemart-backend/pkg/domain"
)

type contextKey string

const (
	ctxUser contextKey = "current_user"
)

// CurrentUserFromContext returns the authenticated user injected by the
// auth middleware, or nil on anonymous requests.
func CurrentUserFromContext(ctx context.Context) *domain.User {
	if ctx == nil {
		return nil
	}
	if u, ok := ctx.Value(ctxUser).(*domain.User); ok {
		return u
	}
	return nil
}

// WithCurrentUser injects the authenticated user into the context.
func WithCurrentUser(ctx context.Context, user *domain.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUser, user)
}
