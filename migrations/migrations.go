// Package migrations embeds the database schema and applies it.
package migrations

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// Schema returns the embedded DDL
func Schema() string {
	return schema
}

// Apply runs the schema in a single transaction
func Apply(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	logx.Info("Database schema is up to date")
	return nil
}
