package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// MUSEMART_ names so the prefix stays documentation.
const EnvPrefix = "MUSEMART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv         = "MUSEMART_APP_ENV"
	EnvPort           = "MUSEMART_APP_PORT"
	EnvSessionBackend = "MUSEMART_SESSION_BACKEND"
	EnvRedisURL       = "MUSEMART_REDIS_URL"
	EnvRedisAddr      = "MUSEMART_REDIS_ADDR"
	EnvSQLitePath     = "MUSEMART_SQLITE_PATH"
)
