package config

// EnvPrefix namespaces every Supertrack environment variable.
const EnvPrefix = "SUPERTRACK"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "SUPERTRACK_APP_ENV"
	EnvPort     = "SUPERTRACK_APP_PORT"
	EnvLogLevel = "SUPERTRACK_LOG_LEVEL"

	EnvDBDSN      = "SUPERTRACK_DB_DSN"
	EnvDBHost     = "SUPERTRACK_DB_HOST"
	EnvDBPort     = "SUPERTRACK_DB_PORT"
	EnvDBUser     = "SUPERTRACK_DB_USER"
	EnvDBPassword = "SUPERTRACK_DB_PASSWORD"
	EnvDBName     = "SUPERTRACK_DB_NAME"

	EnvRedisURL  = "SUPERTRACK_REDIS_URL"
	EnvRedisAddr = "SUPERTRACK_REDIS_ADDR"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
