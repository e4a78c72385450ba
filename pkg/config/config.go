package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Redis   RedisConfig
	SQLite  SQLiteConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	if cfg.Session.Backend == SessionBackendRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("%s or %s is required when the session backend is redis", EnvRedisURL, EnvRedisAddr)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MUSEMART_APP_ENV" default:"dev"`
	Port         string `envconfig:"MUSEMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MUSEMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MUSEMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Session backends. The sqlite file is the default "local durable
// storage"; redis serves deployments that already run one; memory is for
// tests and throwaway runs.
const (
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type SessionConfig struct {
	Backend string        `envconfig:"MUSEMART_SESSION_BACKEND" default:"sqlite"`
	Key     string        `envconfig:"MUSEMART_SESSION_KEY" default:"current_user"`
	TTL     time.Duration `envconfig:"MUSEMART_SESSION_TTL" default:"0"`
}

func (s SessionConfig) validate() error {
	switch s.Backend {
	case SessionBackendSQLite, SessionBackendRedis, SessionBackendMemory:
	default:
		return fmt.Errorf("invalid session backend %q", s.Backend)
	}
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("session key must not be empty")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"MUSEMART_REDIS_URL"`
	Address      string        `envconfig:"MUSEMART_REDIS_ADDR"`
	Password     string        `envconfig:"MUSEMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"MUSEMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MUSEMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MUSEMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MUSEMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MUSEMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MUSEMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SQLiteConfig struct {
	Path string `envconfig:"MUSEMART_SQLITE_PATH" default:"musemart.db"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MUSEMART_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
