package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cache        CacheConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SUPERTRACK_APP_ENV" required:"true"`
	Port         string `envconfig:"SUPERTRACK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SUPERTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SUPERTRACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SUPERTRACK_DB_DSN"`
	Driver string `envconfig:"SUPERTRACK_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"SUPERTRACK_DB_HOST"`
	Port     int    `envconfig:"SUPERTRACK_DB_PORT" default:"5432"`
	User     string `envconfig:"SUPERTRACK_DB_USER"`
	Password string `envconfig:"SUPERTRACK_DB_PASSWORD"`
	Name     string `envconfig:"SUPERTRACK_DB_NAME"`
	SSLMode  string `envconfig:"SUPERTRACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SUPERTRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SUPERTRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SUPERTRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SUPERTRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SUPERTRACK_REDIS_URL"`
	Address      string        `envconfig:"SUPERTRACK_REDIS_ADDR"`
	Password     string        `envconfig:"SUPERTRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"SUPERTRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SUPERTRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SUPERTRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SUPERTRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SUPERTRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SUPERTRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API
// runs without the aggregate cache when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CacheConfig struct {
	ChainAggregateTTL time.Duration `envconfig:"SUPERTRACK_CACHE_CHAIN_TTL" default:"30s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"SUPERTRACK_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"SUPERTRACK_SQLITE_PATH" default:"supertrack.db"`
	AutoMigrate bool   `envconfig:"SUPERTRACK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	discrete := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if discrete[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
