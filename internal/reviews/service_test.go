package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musemart/musemart-backend/internal/store"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

func newService(t *testing.T, initial store.State) (Service, *store.Store) {
	t.Helper()
	st := store.New(initial)
	svc, err := NewService(st, st, func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) })
	require.NoError(t, err)
	return svc, st
}

func reviewState() store.State {
	return store.State{
		Users: []domain.User{{ID: "usr_1"}, {ID: "usr_2"}},
		Products: []domain.Product{
			{ID: "prd_1", Name: "Fender Stratocaster"},
		},
		Orders: []domain.Order{
			{
				ID: "ord_1", UserID: "usr_1", Status: enums.OrderStatusDelivered,
				Items: []domain.OrderItem{{ProductID: "prd_1"}},
			},
		},
	}
}

func TestCreateSnapshotsProductName(t *testing.T) {
	svc, st := newService(t, reviewState())

	review, err := svc.Create("usr_1", CreateInput{ProductID: "prd_1", Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	require.Equal(t, "Fender Stratocaster", review.ProductName)
	require.True(t, review.IsVerified, "delivered order marks the review verified")
	require.Len(t, st.Reviews(), 1)
}

func TestCreateUnverifiedWithoutDeliveredOrder(t *testing.T) {
	svc, _ := newService(t, reviewState())

	review, err := svc.Create("usr_2", CreateInput{ProductID: "prd_1", Rating: 3})
	require.NoError(t, err)
	require.False(t, review.IsVerified)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t, reviewState())

	_, err := svc.Create("usr_1", CreateInput{ProductID: "prd_1", Rating: 0})
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create("usr_1", CreateInput{ProductID: "prd_1", Rating: 6})
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create("usr_missing", CreateInput{ProductID: "prd_1", Rating: 4})
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = svc.Create("usr_1", CreateInput{ProductID: "prd_missing", Rating: 4})
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestUpdateOwnerOnly(t *testing.T) {
	svc, _ := newService(t, reviewState())
	review, err := svc.Create("usr_1", CreateInput{ProductID: "prd_1", Rating: 5})
	require.NoError(t, err)

	rating := 2
	_, err = svc.Update(review.ID, "usr_2", UpdateInput{Rating: &rating})
	require.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	updated, err := svc.Update(review.ID, "usr_1", UpdateInput{Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, 2, updated.Rating)

	_, err = svc.Update("rev_missing", "usr_1", UpdateInput{Rating: &rating})
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListFilters(t *testing.T) {
	svc, _ := newService(t, reviewState())
	_, err := svc.Create("usr_1", CreateInput{ProductID: "prd_1", Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create("usr_2", CreateInput{ProductID: "prd_1", Rating: 3})
	require.NoError(t, err)

	require.Len(t, svc.List(), 2)
	require.Len(t, svc.ListForProduct("prd_1"), 2)
	require.Empty(t, svc.ListForProduct("prd_other"))
	require.Len(t, svc.ListForUser("usr_1"), 1)
}

func TestDelete(t *testing.T) {
	svc, st := newService(t, reviewState())
	review, err := svc.Create("usr_1", CreateInput{ProductID: "prd_1", Rating: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(review.ID))
	require.Empty(t, st.Reviews())

	err = svc.Delete(review.ID)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
