package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectTimeout bounds pool creation and the initial ping.
const ConnectTimeout = 5 * time.Second

// Connect opens a pgx connection pool against databaseURL and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database url is required")
	}

	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return pool, nil
}

// Text returns the value of a nullable text column, or "" when NULL.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullText maps "" to NULL for nullable text columns.
func NullText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
