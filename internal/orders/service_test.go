package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musemart/musemart-backend/internal/store"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

var testNow = time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T, initial store.State) (Service, *store.Store) {
	t.Helper()
	st := store.New(initial)
	svc, err := NewService(st, func() time.Time { return testNow })
	require.NoError(t, err)
	return svc, st
}

func checkoutState() store.State {
	return store.State{
		Products: []domain.Product{
			{ID: "prd_1", Name: "Fender Stratocaster", Price: 8990000, Image: "strat.jpg"},
			{ID: "prd_2", Name: "Shure SM58", Price: 1290000},
		},
		Users: []domain.User{{ID: "usr_1", Name: "Anna"}},
		Addresses: []domain.Address{
			{ID: "addr_1", UserID: "usr_1", City: "Moscow"},
			{ID: "addr_2", UserID: "usr_1", City: "Kazan", IsDefault: true},
		},
		Cart: []domain.CartItem{
			{ProductID: "prd_1", Quantity: 1},
			{ProductID: "prd_2", Quantity: 2},
		},
	}
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	svc, st := newService(t, checkoutState())

	order, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.NoError(t, err)

	require.Equal(t, "ORD-001", order.OrderNumber)
	require.Equal(t, enums.OrderStatusPending, order.Status)
	require.Equal(t, enums.PaymentStatusPending, order.PaymentStatus)
	require.Equal(t, 8990000+2*1290000, order.TotalAmount)
	require.Len(t, order.Items, 2)
	require.Equal(t, "Fender Stratocaster", order.Items[0].ProductName)
	require.Equal(t, "Kazan", order.ShippingAddress.City, "default address wins")
	require.Equal(t, testNow.AddDate(0, 0, 5), *order.EstimatedDelivery)

	require.Empty(t, st.Cart(), "cart empties after checkout")
	require.Len(t, st.Orders(), 1)
}

func TestPlaceOrderPricesAreSnapshots(t *testing.T) {
	svc, st := newService(t, checkoutState())

	order, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCash)
	require.NoError(t, err)

	// A later address edit must not leak into the placed order.
	st.UpdateAddress(domain.Address{ID: "addr_2", UserID: "usr_1", City: "Perm", IsDefault: true})

	stored, err := svc.Get(order.ID)
	require.NoError(t, err)
	require.Equal(t, "Kazan", stored.ShippingAddress.City)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _ := newService(t, checkoutState())

	_, err := svc.PlaceOrder("usr_missing", enums.PaymentMethodCard)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = svc.PlaceOrder("usr_1", enums.PaymentMethod("barter"))
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	state := checkoutState()
	state.Cart = nil
	svc, _ := newService(t, state)

	_, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestPlaceOrderNoAddress(t *testing.T) {
	state := checkoutState()
	state.Addresses = nil
	svc, _ := newService(t, state)

	_, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestPlaceOrderFallsBackToFirstAddress(t *testing.T) {
	state := checkoutState()
	state.Addresses = []domain.Address{{ID: "addr_1", UserID: "usr_1", City: "Moscow"}}
	svc, _ := newService(t, state)

	order, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.NoError(t, err)
	require.Equal(t, "Moscow", order.ShippingAddress.City)
}

func TestOrderNumberSequence(t *testing.T) {
	state := checkoutState()
	state.Orders = []domain.Order{
		{ID: "ord_a", UserID: "usr_1", OrderNumber: "ORD-001"},
		{ID: "ord_b", UserID: "usr_1", OrderNumber: "ORD-002"},
	}
	svc, st := newService(t, state)

	// The sequence continues past the highest issued number even when
	// an earlier order disappears; numbers are never reused.
	st.RemoveOrder("ord_a")

	order, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.NoError(t, err)
	require.Equal(t, "ORD-003", order.OrderNumber)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newService(t, checkoutState())
	order, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, enums.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusShipped, updated.Status)

	_, err = svc.UpdateStatus(order.ID, enums.OrderStatus("lost"))
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.UpdateStatus("ord_missing", enums.OrderStatusShipped)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCancelRules(t *testing.T) {
	svc, _ := newService(t, checkoutState())
	order, err := svc.PlaceOrder("usr_1", enums.PaymentMethodCard)
	require.NoError(t, err)

	_, err = svc.Cancel(order.ID, "usr_other")
	require.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	cancelled, err := svc.Cancel(order.ID, "usr_1")
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusCancelled, cancelled.Status)

	_, err = svc.Cancel(order.ID, "usr_1")
	require.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}
