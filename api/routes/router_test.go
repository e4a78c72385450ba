package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/musemart/musemart-backend/api/controllers"
	addresssvc "github.com/musemart/musemart-backend/internal/address"
	cartsvc "github.com/musemart/musemart-backend/internal/cart"
	ordersvc "github.com/musemart/musemart-backend/internal/orders"
	productsvc "github.com/musemart/musemart-backend/internal/products"
	reviewsvc "github.com/musemart/musemart-backend/internal/reviews"
	"github.com/musemart/musemart-backend/internal/seed"
	sessionsvc "github.com/musemart/musemart-backend/internal/session"
	"github.com/musemart/musemart-backend/internal/store"
	usersvc "github.com/musemart/musemart-backend/internal/users"
	"github.com/musemart/musemart-backend/pkg/config"
	"github.com/musemart/musemart-backend/pkg/logger"
	"github.com/musemart/musemart-backend/pkg/sessionstore"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	handler http.Handler
	store   *store.Store
	session sessionsvc.Service
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"

	logg := logger.New(logger.Options{Level: zerolog.ErrorLevel, Output: io.Discard})
	st := store.New(seed.Initial(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))

	session, err := sessionsvc.NewService(sessionsvc.ServiceParams{
		Users:   st,
		Persist: sessionstore.NewMemoryStore(),
		Logger:  logg,
	})
	require.NoError(t, err)
	session.Restore(context.Background())

	products, err := productsvc.NewService(st, seed.Categories(), seed.PopularProducts())
	require.NoError(t, err)
	cart, err := cartsvc.NewService(st)
	require.NoError(t, err)
	orders, err := ordersvc.NewService(st, nil)
	require.NoError(t, err)
	users, err := usersvc.NewService(st, nil)
	require.NoError(t, err)
	reviews, err := reviewsvc.NewService(st, st, nil)
	require.NoError(t, err)
	address, err := addresssvc.NewService(st)
	require.NoError(t, err)

	handler := NewRouter(cfg, logg, nil, nil, controllers.Pinger(stubPinger{}), Services{
		Session:  session,
		Products: products,
		Cart:     cart,
		Orders:   orders,
		Users:    users,
		Reviews:  reviews,
		Address:  address,
	})
	return testEnv{handler: handler, store: st, session: session}
}

func (e testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	m, _ := envelope.Data.(map[string]any)
	return m
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health/live", nil).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health/ready", nil).Code)
}

func TestCatalogIsPublic(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/catalog/products", nil).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/catalog/categories", nil).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/catalog/products/prd_001", nil).Code)
	require.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/catalog/products/prd_zzz", nil).Code)
	require.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/catalog/products?category=pianos", nil).Code)
	require.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/catalog/products?limit=abc", nil).Code)
}

func TestAuthFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "ant@gmail.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "ant@gmail.com", "password": "1234567890",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.NotNil(t, data["user"])

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/auth/logout", nil).Code)
	w = env.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	data = decodeData(t, w)
	require.Nil(t, data["user"])
}

func TestUserResponsesOmitPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "New User", "email": "new@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotContains(t, w.Body.String(), `"password"`)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "admin@musemart.ru", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), `"password"`)

	for _, path := range []string{
		"/api/v1/auth/me",
		"/api/v1/profile/",
		"/api/admin/v1/users/",
		"/api/admin/v1/users/usr_005",
	} {
		w = env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		require.NotContains(t, w.Body.String(), `"password"`, path)
	}
}

func TestRegisterConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "New User", "email": "new@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "Dup", "email": "ANT@gmail.com", "password": "secret1",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/checkout", map[string]string{"paymentMethod": "card"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	require.True(t, env.session.Login(context.Background(), "ant@gmail.com", "1234567890"))

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"productId": "prd_001"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/cart/items/prd_001", map[string]int{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.EqualValues(t, 3, data["totalItems"])

	w = env.do(t, http.MethodPost, "/api/v1/checkout", map[string]string{"paymentMethod": "card"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/cart/", nil)
	data = decodeData(t, w)
	require.EqualValues(t, 0, data["totalItems"])

	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/orders/", nil).Code)
}

func TestBlockedUserIsRejected(t *testing.T) {
	env := newTestEnv(t)
	// petr@example.com is seeded blocked.
	require.True(t, env.session.Login(context.Background(), "petr@example.com", "user123"))

	w := env.do(t, http.MethodGet, "/api/v1/profile/", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminSurfaceIsPermissionGated(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/v1/users/", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	require.True(t, env.session.Login(context.Background(), "ant@gmail.com", "1234567890"))
	w = env.do(t, http.MethodGet, "/api/admin/v1/users/", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	require.True(t, env.session.Login(context.Background(), "admin@musemart.ru", "password123"))
	w = env.do(t, http.MethodGet, "/api/admin/v1/users/", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestManagerCannotDeleteUsers(t *testing.T) {
	env := newTestEnv(t)
	require.True(t, env.session.Login(context.Background(), "marina@musemart.ru", "manager123"))

	w := env.do(t, http.MethodDelete, "/api/admin/v1/users/usr_005", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Managers do hold users:read.
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/admin/v1/users/", nil).Code)
}

func TestAdminDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	require.True(t, env.session.Login(context.Background(), "admin@musemart.ru", "password123"))

	w := env.do(t, http.MethodDelete, "/api/admin/v1/users/usr_005", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.Nil(t, env.store.UserByID("usr_005"))
	require.Empty(t, env.store.UserOrders("usr_005"))
	require.Empty(t, env.store.UserAddresses("usr_005"))
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	env := newTestEnv(t)
	require.True(t, env.session.Login(context.Background(), "admin@musemart.ru", "password123"))

	w := env.do(t, http.MethodDelete, "/api/admin/v1/users/usr_001", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthReadyReportsBackendFailure(t *testing.T) {
	cfg := &config.Config{}
	logg := logger.New(logger.Options{Level: zerolog.ErrorLevel, Output: io.Discard})
	handler := controllers.HealthReady(cfg, logg, stubPinger{err: context.DeadlineExceeded})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
