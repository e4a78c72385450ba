package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if cfg.Session.Backend != SessionBackendSQLite {
		t.Fatalf("expected sqlite session backend, got %q", cfg.Session.Backend)
	}
	if cfg.Session.Key != "current_user" {
		t.Fatalf("unexpected session key %q", cfg.Session.Key)
	}
	if cfg.SQLite.Path != "musemart.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.SQLite.Path)
	}
}

func TestLoad_RedisBackendRequiresEndpoint(t *testing.T) {
	t.Setenv(EnvSessionBackend, SessionBackendRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without endpoint to fail")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if cfg.Redis.DialTimeout != 5*time.Second {
		t.Fatalf("unexpected dial timeout %v", cfg.Redis.DialTimeout)
	}
}

func TestLoad_RejectsUnknownSessionBackend(t *testing.T) {
	t.Setenv(EnvSessionBackend, "parchment")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to fail validation")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
