package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musemart/musemart-backend/pkg/enums"
)

func TestInitialIsInternallyConsistent(t *testing.T) {
	state := Initial(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	users := map[string]struct{}{}
	for _, u := range state.Users {
		users[u.ID] = struct{}{}
	}
	products := map[string]struct{}{}
	for _, p := range state.Products {
		products[p.ID] = struct{}{}
	}

	for _, o := range state.Orders {
		_, ok := users[o.UserID]
		require.True(t, ok, "order %s references unknown user", o.ID)
		total := 0
		for _, item := range o.Items {
			_, ok := products[item.ProductID]
			require.True(t, ok, "order %s references unknown product", o.ID)
			total += item.LineTotal()
		}
		require.Equal(t, total, o.TotalAmount, "order %s total mismatch", o.ID)
	}
	for _, r := range state.Reviews {
		_, ok := users[r.UserID]
		require.True(t, ok)
		_, ok = products[r.ProductID]
		require.True(t, ok)
	}
	for _, a := range state.Addresses {
		_, ok := users[a.UserID]
		require.True(t, ok)
	}
	require.Empty(t, state.Cart, "carts start empty")
}

func TestInitialUniqueIDsAndEmails(t *testing.T) {
	state := Initial(time.Now())

	ids := map[string]struct{}{}
	for _, p := range state.Products {
		_, dup := ids[p.ID]
		require.False(t, dup, "duplicate product id %s", p.ID)
		ids[p.ID] = struct{}{}
	}

	emails := map[string]struct{}{}
	for _, u := range state.Users {
		_, dup := emails[u.Email]
		require.False(t, dup, "duplicate email %s", u.Email)
		emails[u.Email] = struct{}{}
		require.NotEmpty(t, u.Password)
		require.True(t, u.Role.IsValid())
		require.True(t, u.Status.IsValid())
	}
}

func TestDefaultAddressIsExclusive(t *testing.T) {
	state := Initial(time.Now())

	defaults := map[string]int{}
	for _, a := range state.Addresses {
		if a.IsDefault {
			defaults[a.UserID]++
		}
	}
	for userID, n := range defaults {
		require.Equal(t, 1, n, "user %s has %d default addresses", userID, n)
	}
}

func TestCategoriesCoverEveryProduct(t *testing.T) {
	known := map[enums.ProductCategory]struct{}{}
	for _, c := range Categories() {
		known[c.Key] = struct{}{}
	}
	for _, p := range Products() {
		_, ok := known[p.Category]
		require.True(t, ok, "product %s has unlisted category %s", p.ID, p.Category)
	}
}

func TestPopularProductsComeFromCatalog(t *testing.T) {
	catalog := map[string]struct{}{}
	for _, p := range Products() {
		catalog[p.ID] = struct{}{}
	}
	popular := PopularProducts()
	require.NotEmpty(t, popular)
	for _, p := range popular {
		_, ok := catalog[p.ID]
		require.True(t, ok)
	}
}
