package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musemart/musemart-backend/internal/store"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

func newService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	st := store.New(store.State{
		Users: []domain.User{
			{ID: "usr_1", Name: "Anna", Email: "anna@example.com", Role: enums.UserRoleCustomer, Status: enums.UserStatusActive},
		},
		Orders:    []domain.Order{{ID: "ord_1", UserID: "usr_1", TotalAmount: 500}},
		Reviews:   []domain.Review{{ID: "rev_1", UserID: "usr_1", Rating: 4}},
		Addresses: []domain.Address{{ID: "addr_1", UserID: "usr_1"}},
	})
	svc, err := NewService(st, func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) })
	require.NoError(t, err)
	return svc, st
}

func TestListAndGetAreEnhanced(t *testing.T) {
	svc, _ := newService(t)

	all := svc.List()
	require.Len(t, all, 1)
	require.Equal(t, 1, all[0].Stats.TotalOrders)
	require.Equal(t, 500, all[0].Stats.TotalSpent)

	one, err := svc.Get("usr_1")
	require.NoError(t, err)
	require.Len(t, one.Addresses, 1)

	_, err = svc.Get("usr_missing")
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreateAssignsRolePermissions(t *testing.T) {
	svc, st := newService(t)

	created, err := svc.Create(CreateInput{
		Name:     "Boris",
		Email:    "boris@example.com",
		Password: "pw",
		Role:     enums.UserRoleManager,
	})
	require.NoError(t, err)
	require.Equal(t, enums.UserStatusActive, created.Status)
	require.ElementsMatch(t, enums.PermissionsForRole(enums.UserRoleManager), created.Permissions)
	require.NotNil(t, st.UserByEmail("boris@example.com"))

	_, err = svc.Create(CreateInput{Email: "ANNA@example.com", Role: enums.UserRoleCustomer})
	require.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	_, err = svc.Create(CreateInput{Email: "new@example.com", Role: enums.UserRole("root")})
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateRoleRefreshesPermissions(t *testing.T) {
	svc, _ := newService(t)

	role := enums.UserRoleManager
	updated, err := svc.Update("usr_1", UpdateInput{Role: &role})
	require.NoError(t, err)
	require.ElementsMatch(t, enums.PermissionsForRole(enums.UserRoleManager), updated.Permissions)
}

func TestUpdateEmailConflict(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Create(CreateInput{Name: "Boris", Email: "boris@example.com", Role: enums.UserRoleCustomer})
	require.NoError(t, err)

	taken := "BORIS@example.com"
	_, err = svc.Update("usr_1", UpdateInput{Email: &taken})
	require.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	// Re-submitting your own email is not a conflict.
	same := "ANNA@example.com"
	_, err = svc.Update("usr_1", UpdateInput{Email: &same})
	require.NoError(t, err)
}

func TestSetStatusBlocks(t *testing.T) {
	svc, st := newService(t)

	_, err := svc.SetStatus("usr_1", enums.UserStatusBlocked)
	require.NoError(t, err)
	require.Equal(t, enums.UserStatusBlocked, st.UserByID("usr_1").Status)
}

func TestDeleteCascades(t *testing.T) {
	svc, st := newService(t)

	require.NoError(t, svc.Delete("usr_1"))
	require.Nil(t, st.UserByID("usr_1"))
	require.Empty(t, st.Orders())
	require.Empty(t, st.Reviews())
	require.Empty(t, st.Addresses())

	err := svc.Delete("usr_1")
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestUpdateProfile(t *testing.T) {
	svc, st := newService(t)

	name := "Anna Petrova"
	phone := "+7 (999) 000-00-00"
	updated, err := svc.UpdateProfile("usr_1", ProfileInput{Name: &name, Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "Anna Petrova", updated.Name)
	require.Equal(t, phone, *st.UserByID("usr_1").Phone)
}
