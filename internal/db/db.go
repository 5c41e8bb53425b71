// Package db provides PostgreSQL persistence for analyses, learning plans,
// and the learning resource catalog.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS learning_resources (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		skill_name TEXT NOT NULL,
		resource_title TEXT NOT NULL,
		resource_url TEXT NOT NULL,
		platform TEXT NOT NULL,
		duration_weeks INT NOT NULL DEFAULT 1,
		difficulty_level TEXT NOT NULL DEFAULT 'Beginner',
		description TEXT,
		rating DOUBLE PRECISION,
		price TEXT NOT NULL DEFAULT 'Free',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS learning_resources_skill_idx
		ON learning_resources (LOWER(skill_name))`,
	`CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		resume_filename TEXT NOT NULL,
		user_name TEXT,
		user_email TEXT,
		matching_skills TEXT,
		missing_skills TEXT,
		match_percentage DOUBLE PRECISION NOT NULL,
		jobs_analyzed INT NOT NULL,
		cluster_id INT,
		jobs_in_same_cluster INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS learning_weeks (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		analysis_id UUID NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
		week_number INT NOT NULL,
		skill_focus TEXT NOT NULL,
		resources TEXT,
		milestones TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (analysis_id, week_number)
	)`,
}

// Migrate creates the schema if it does not exist and seeds the resource
// catalog on first run.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return db.seedResourcesIfEmpty(ctx)
}
