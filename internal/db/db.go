// Package db provides PostgreSQL persistence for DISC assessment results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS disc_results (
	id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_name         TEXT,
	user_email        TEXT,
	raw_responses     JSONB NOT NULL,
	d_score           INTEGER NOT NULL,
	i_score           INTEGER NOT NULL,
	s_score           INTEGER NOT NULL,
	c_score           INTEGER NOT NULL,
	primary_profile   VARCHAR(1) NOT NULL,
	secondary_profile VARCHAR(1) NOT NULL,
	disc_levels       JSONB NOT NULL,
	result            JSONB NOT NULL,
	incomplete        BOOLEAN NOT NULL DEFAULT FALSE,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS disc_results_created_at_idx ON disc_results (created_at DESC);
`

// EnsureSchema creates the results table when it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
