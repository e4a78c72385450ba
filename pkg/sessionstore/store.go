package sessionstore

import (
	"context"

	"github.com/musemart/musemart-backend/pkg/domain"
)

// Store persists the single serialized session record: the current user
// snapshotted at login/register time. Load returns (nil, nil) when no
// record exists; an unparseable record surfaces as an error so the
// caller can discard it.
type Store interface {
	Save(ctx context.Context, user domain.User) error
	Load(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}
