package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"fortune/pkg/storage"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed as sslmode, e.g. "disable" or "require".
	SslMode string

	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool, MaxIdleConnections is kept warm.
	MaxOpenConnections int
	MaxIdleConnections int
}

// ConnString returns the options as a postgres URL. Credentials are escaped,
// so passwords may contain any character.
func (o Options) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:   "/" + o.Database,
	}
	if o.SslMode != "" {
		u.RawQuery = url.Values{"sslmode": {o.SslMode}}.Encode()
	}

	return u.String()
}

func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.ConnString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = int32(o.MaxIdleConnections) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

var _ storage.Storage = (*PgSQL)(nil)

// PgSQL implements storage.Storage. Queries are built with goqu and run
// through the database/sql wrapper of a pgx pool, the same handle goose and
// river's database/sql driver use.
type PgSQL struct {
	DB      *sql.DB
	Builder *goqu.Database
	// Pool backs DB and is handed to the river workers directly.
	Pool *pgxpool.Pool
}

// Close closes the sql wrapper and the pool beneath it.
func (p *PgSQL) Close() error {
	if p.DB != nil {
		_ = p.DB.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

// New connects to postgres and fails when the server cannot be reached.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres at %s: %w", cfg.ConnConfig.Host, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.New("postgres", sqlDB),
		Pool:    pool,
	}, nil
}
