package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, loaded, "empty store must report no session")

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	user := domain.User{
		ID:        "usr_test",
		Name:      "Test User",
		Email:     "test@musemart.ru",
		Role:      enums.UserRoleCustomer,
		Status:    enums.UserStatusActive,
		CreatedAt: now,
		LastLogin: &now,
		Permissions: []enums.Permission{
			enums.PermissionOrdersRead,
			enums.PermissionReviewsRead,
		},
	}
	require.NoError(t, store.Save(ctx, user))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, user.ID, loaded.ID)
	require.Equal(t, user.Email, loaded.Email)
	require.Equal(t, user.Permissions, loaded.Permissions)
	require.True(t, loaded.LastLogin.Equal(now))

	require.NoError(t, store.Clear(ctx))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestMemoryStoreCorruptPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, domain.User{ID: "usr_x"}))

	store.Corrupt()

	_, err := store.Load(ctx)
	require.Error(t, err, "corrupt payload must surface as an error")
}
