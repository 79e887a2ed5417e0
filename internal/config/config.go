package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration. Every field can be set from the
// yaml file and overridden by its environment variable.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"fortune" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT configures access token signing and verification
	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign tokens. Only the
		// issuing side needs it.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of issued access tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"720h" yaml:"ttl"`
		// Issuer is set as the iss claim and required on verification when not empty
		Issuer string `env:"JWT_ISSUER" env-default:"fortune" yaml:"issuer"`
	} `yaml:"jwt"`

	// Fortune configures the business day and history
	Fortune struct {
		// Timezone is the IANA zone the business day follows. Unknown zones fall back to UTC.
		Timezone string `env:"APP_TIMEZONE" env-default:"Asia/Shanghai" yaml:"timezone"`
		// DayResetOffsetSeconds shifts the reset instant away from local midnight
		DayResetOffsetSeconds int `env:"DAY_RESET_OFFSET_SECONDS" env-default:"0" yaml:"dayResetOffsetSeconds"`
		// HistoryWindow is how far back the fortune history reaches
		HistoryWindow time.Duration `env:"FORTUNE_HISTORY_WINDOW" env-default:"8760h" yaml:"historyWindow"`
	} `yaml:"fortune"`

	// Redis configures the leaderboard cache. An empty Addr disables it.
	Redis struct {
		Addr           string        `env:"REDIS_ADDR" yaml:"addr"`
		Password       string        `env:"REDIS_PASSWORD" yaml:"password"`
		DB             int           `env:"REDIS_DB" env-default:"0" yaml:"db"`
		LeaderboardTTL time.Duration `env:"REDIS_LEADERBOARD_TTL" env-default:"30s" yaml:"leaderboardTTL"`
	} `yaml:"redis"`

	// RateLimit configures per client IP limits on the auth endpoints
	RateLimit struct {
		// RegisterPerMinute is the sustained register rate per IP
		RegisterPerMinute int `env:"RATE_LIMIT_REGISTER_PER_MINUTE" env-default:"5" yaml:"registerPerMinute"`
		// LoginPerMinute is the sustained login rate per IP
		LoginPerMinute int `env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10" yaml:"loginPerMinute"`
		// MaxClients bounds how many client IPs are tracked at once
		MaxClients int `env:"RATE_LIMIT_MAX_CLIENTS" env-default:"10000" yaml:"maxClients"`
	} `yaml:"rateLimit"`

	// Worker configures background jobs
	Worker struct {
		// MaxWorkers bounds the concurrency of the default river queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// ActivityUniquePeriod is the window in which repeated activity touches of
		// the same user collapse into one job
		ActivityUniquePeriod time.Duration `env:"WORKER_ACTIVITY_UNIQUE_PERIOD" env-default:"1m" yaml:"activityUniquePeriod"` //nolint: lll
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
