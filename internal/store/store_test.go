package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/musemart/musemart-backend/pkg/domain"
)

func TestStoreSnapshotsDoNotAlias(t *testing.T) {
	s := New(fixtureState())

	users := s.Users()
	users[0].Name = "mutated"

	require.Equal(t, "Anna", s.Users()[0].Name)
}

func TestStoreUserByEmailIsCaseInsensitive(t *testing.T) {
	s := New(fixtureState())

	u := s.UserByEmail("ANNA@Example.COM")
	require.NotNil(t, u)
	require.Equal(t, "usr_1", u.ID)

	require.Nil(t, s.UserByEmail("nobody@example.com"))
}

func TestStoreLookupsReturnNilWhenAbsent(t *testing.T) {
	s := New(fixtureState())

	require.Nil(t, s.UserByID("usr_missing"))
	require.Nil(t, s.ProductByID("prd_missing"))
	require.Nil(t, s.OrderByID("ord_missing"))
}

func TestStoreRemoveUserCascades(t *testing.T) {
	s := New(fixtureState())

	s.RemoveUser("usr_1")

	require.Nil(t, s.UserByID("usr_1"))
	require.Empty(t, s.UserOrders("usr_1"))
	require.Empty(t, s.UserReviews("usr_1"))
	require.Empty(t, s.UserAddresses("usr_1"))
	require.NotNil(t, s.UserByID("usr_2"))
}

func TestStoreSetDefaultAddress(t *testing.T) {
	s := New(fixtureState())

	s.SetDefaultAddress("addr_2", "usr_1")

	defaults := 0
	for _, a := range s.UserAddresses("usr_1") {
		if a.IsDefault {
			defaults++
			require.Equal(t, "addr_2", a.ID)
		}
	}
	require.Equal(t, 1, defaults)
}

func TestStoreCartLifecycle(t *testing.T) {
	s := New(State{Products: []domain.Product{{ID: "prd_1"}, {ID: "prd_2"}}})

	s.AddToCart(domain.Product{ID: "prd_1"})
	s.AddToCart(domain.Product{ID: "prd_1"})
	s.AddToCart(domain.Product{ID: "prd_2"})
	require.Equal(t, []domain.CartItem{
		{ProductID: "prd_1", Quantity: 2},
		{ProductID: "prd_2", Quantity: 1},
	}, s.Cart())

	s.UpdateCartQuantity("prd_1", 5)
	require.Equal(t, 5, s.Cart()[0].Quantity)

	s.UpdateCartQuantity("prd_2", 0)
	require.Len(t, s.Cart(), 1)

	s.RemoveFromCart("prd_1")
	require.Empty(t, s.Cart())

	s.AddToCart(domain.Product{ID: "prd_2"})
	s.ClearCart()
	require.Empty(t, s.Cart())
}

func TestStoreUpdateMissingIDIsNoop(t *testing.T) {
	s := New(fixtureState())
	before := s.Snapshot()

	s.UpdateOrder(domain.Order{ID: "ord_missing", TotalAmount: 1})
	s.UpdateReview(domain.Review{ID: "rev_missing", Rating: 1})
	s.UpdateAddress(domain.Address{ID: "addr_missing"})
	s.RemoveOrder("ord_missing")
	s.RemoveFromCart("prd_missing")

	require.Equal(t, before, s.Snapshot())
}

func TestStoreConcurrentDispatch(t *testing.T) {
	s := New(State{Products: []domain.Product{{ID: "prd_1"}}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddToCart(domain.Product{ID: "prd_1"})
			s.Cart()
		}()
	}
	wg.Wait()

	require.Equal(t, 50, s.Cart()[0].Quantity)
}
