package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/musemart/musemart-backend/api/controllers"
	"github.com/musemart/musemart-backend/api/routes"
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
	"github.com/musemart/musemart-backend/pkg/db"
	"github.com/musemart/musemart-backend/pkg/logger"
	"github.com/musemart/musemart-backend/pkg/metrics"
	"github.com/musemart/musemart-backend/pkg/redis"
	"github.com/musemart/musemart-backend/pkg/sessionstore"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	persist, backend, cleanup, err := newSessionStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap session storage", err)
		os.Exit(1)
	}
	defer cleanup()

	st := store.New(seed.Initial(time.Now()))

	session, err := sessionsvc.NewService(sessionsvc.ServiceParams{
		Users:   st,
		Persist: persist,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}
	session.Restore(context.Background())

	products, err := productsvc.NewService(st, seed.Categories(), seed.PopularProducts())
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}
	cart, err := cartsvc.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	orders, err := ordersvc.NewService(st, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	users, err := usersvc.NewService(st, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}
	reviews, err := reviewsvc.NewService(st, st, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}
	address, err := addresssvc.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create address service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	requestMetrics := metrics.NewRequestMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"session": cfg.Session.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, requestMetrics, metricsHandler, backend, routes.Services{
			Session:  session,
			Products: products,
			Cart:     cart,
			Orders:   orders,
			Users:    users,
			Reviews:  reviews,
			Address:  address,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// newSessionStore builds the configured persistence backend plus the
// pinger the readiness probe watches. The cleanup func closes whatever
// client was opened; for the memory backend it is a no-op.
func newSessionStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (sessionstore.Store, controllers.Pinger, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, nil, err
		}
		persist, err := sessionstore.NewRedisStore(client, cfg.Session.Key, cfg.Session.TTL)
		if err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}
		return persist, client, cleanup, nil

	case config.SessionBackendMemory:
		return sessionstore.NewMemoryStore(), nil, func() {}, nil

	default:
		client, err := db.New(ctx, cfg.SQLite, logg)
		if err != nil {
			return nil, nil, nil, err
		}
		persist, err := sessionstore.NewSQLiteStore(client, cfg.Session.Key)
		if err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing sqlite", err)
			}
		}
		return persist, client, cleanup, nil
	}
}
