// pkg/db/postgres.go
package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Config identifies the managed Postgres store. URL is a postgres:// endpoint
// URL; APIKey is the service credential injected as the connection password.
type Config struct {
	URL    string
	APIKey string
}

// DSN builds the driver connection string from the store URL and API key.
func (c Config) DSN() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid store URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported store URL scheme %q", u.Scheme)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.APIKey)
	return u.String(), nil
}

// Open initializes a Postgres connection pool without verifying reachability.
// Callers decide how to handle an unreachable store via Ping; the server
// intentionally comes up in a degraded mode when the store is down.
func Open(cfg Config) (*sqlx.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	database, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL pool: %w", err)
	}

	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(10)
	database.SetConnMaxLifetime(5 * time.Minute)

	return database, nil
}

// Ping verifies the store is reachable, bounded by a short timeout.
func Ping(ctx context.Context, database *sqlx.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	return nil
}
