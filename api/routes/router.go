package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/controllers"
	"github.com/musemart/musemart-backend/api/middleware"
	addresssvc "github.com/musemart/musemart-backend/internal/address"
	cartsvc "github.com/musemart/musemart-backend/internal/cart"
	ordersvc "github.com/musemart/musemart-backend/internal/orders"
	productsvc "github.com/musemart/musemart-backend/internal/products"
	reviewsvc "github.com/musemart/musemart-backend/internal/reviews"
	sessionsvc "github.com/musemart/musemart-backend/internal/session"
	usersvc "github.com/musemart/musemart-backend/internal/users"
	"github.com/musemart/musemart-backend/pkg/config"
	"github.com/musemart/musemart-backend/pkg/enums"
	"github.com/musemart/musemart-backend/pkg/logger"
	"github.com/musemart/musemart-backend/pkg/metrics"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Session  sessionsvc.Service
	Products productsvc.Service
	Cart     cartsvc.Service
	Orders   ordersvc.Service
	Users    usersvc.Service
	Reviews  reviewsvc.Service
	Address  addresssvc.Service
}

// NewRouter assembles the full HTTP surface: public catalog, auth,
// buyer endpoints behind the session, and the permission-gated admin
// surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	requestMetrics *metrics.RequestMetrics,
	metricsHandler http.Handler,
	sessionBackend controllers.Pinger,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(requestMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Session(svcs.Session, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, sessionBackend))
	})
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(svcs.Session, logg))
			r.Post("/register", controllers.AuthRegister(svcs.Session, logg))
			r.Post("/logout", controllers.AuthLogout(svcs.Session))
			r.Get("/me", controllers.AuthMe(svcs.Session))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", controllers.ListCategories(svcs.Products))
			r.Get("/products", controllers.ListProducts(svcs.Products, logg))
			r.Get("/products/popular", controllers.PopularProducts(svcs.Products))
			r.Get("/products/{productId}", controllers.GetProduct(svcs.Products, svcs.Reviews, logg))
			r.Get("/products/{productId}/reviews", controllers.ProductReviews(svcs.Reviews))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(svcs.Cart))
			r.Post("/items", controllers.CartAdd(svcs.Cart, logg))
			r.Put("/items/{productId}", controllers.CartSetQuantity(svcs.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemove(svcs.Cart))
			r.Delete("/", controllers.CartClear(svcs.Cart))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(logg))

			r.Post("/checkout", controllers.Checkout(svcs.Orders, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.MyOrders(svcs.Orders))
				r.Get("/{orderId}", controllers.OrderDetail(svcs.Orders, logg))
				r.Post("/{orderId}/cancel", controllers.CancelOrder(svcs.Orders, logg))
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.Profile(svcs.Users, logg))
				r.Put("/", controllers.UpdateProfile(svcs.Users, logg))
				r.Route("/addresses", func(r chi.Router) {
					r.Get("/", controllers.ListAddresses(svcs.Address))
					r.Post("/", controllers.CreateAddress(svcs.Address, logg))
					r.Put("/{addressId}", controllers.UpdateAddress(svcs.Address, logg))
					r.Delete("/{addressId}", controllers.DeleteAddress(svcs.Address, logg))
					r.Post("/{addressId}/default", controllers.SetDefaultAddress(svcs.Address, logg))
				})
				r.Get("/reviews", controllers.MyReviews(svcs.Reviews))
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Post("/", controllers.CreateReview(svcs.Reviews, logg))
				r.Put("/{reviewId}", controllers.UpdateReview(svcs.Reviews, logg))
				r.Delete("/{reviewId}", controllers.DeleteReview(svcs.Reviews, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(logg))

		r.Route("/users", func(r chi.Router) {
			r.With(middleware.RequirePermission(enums.PermissionUsersRead, logg)).
				Get("/", controllers.AdminListUsers(svcs.Users))
			r.With(middleware.RequirePermission(enums.PermissionUsersRead, logg)).
				Get("/{userId}", controllers.AdminGetUser(svcs.Users, logg))
			r.With(middleware.RequirePermission(enums.PermissionUsersWrite, logg)).
				Post("/", controllers.AdminCreateUser(svcs.Users, logg))
			r.With(middleware.RequirePermission(enums.PermissionUsersWrite, logg)).
				Put("/{userId}", controllers.AdminUpdateUser(svcs.Users, logg))
			r.With(middleware.RequirePermission(enums.PermissionUsersWrite, logg)).
				Post("/{userId}/block", controllers.AdminSetUserStatus(svcs.Users, enums.UserStatusBlocked, logg))
			r.With(middleware.RequirePermission(enums.PermissionUsersWrite, logg)).
				Post("/{userId}/unblock", controllers.AdminSetUserStatus(svcs.Users, enums.UserStatusActive, logg))
			r.With(middleware.RequirePermission(enums.PermissionUsersDelete, logg)).
				Delete("/{userId}", controllers.AdminDeleteUser(svcs.Users, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.RequirePermission(enums.PermissionOrdersRead, logg)).
				Get("/", controllers.AdminListOrders(svcs.Orders))
			r.With(middleware.RequirePermission(enums.PermissionOrdersWrite, logg)).
				Put("/{orderId}/status", controllers.AdminUpdateOrderStatus(svcs.Orders, logg))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(middleware.RequirePermission(enums.PermissionReviewsRead, logg)).
				Get("/", controllers.AdminListReviews(svcs.Reviews))
			r.With(middleware.RequirePermission(enums.PermissionReviewsDelete, logg)).
				Delete("/{reviewId}", controllers.DeleteReview(svcs.Reviews, logg))
		})
	})

	return r
}
