package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/project-register/projects-backend/config"

	_ "github.com/lib/pq"
)

func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// EnsureSchema creates the projects table when it does not exist yet.
// Column names match the legacy schema exactly, quoted identifiers included.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS projects (
	"project id" SERIAL PRIMARY KEY,
	"project name" TEXT NOT NULL,
	status TEXT NOT NULL,
	applicant TEXT NOT NULL,
	"submission date" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	place TEXT NOT NULL,
	"user" TEXT NOT NULL
);`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure projects table: %w", err)
	}
	return nil
}
