package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ExecFunc executes one DDL statement.
type ExecFunc func(ctx context.Context, stmt string) error

// Schema returns the DDL statements for dialect ("postgres" or "sqlite3").
func Schema(dialect string) ([]string, error) {
	var file string
	switch dialect {
	case DriverPostgres:
		file = "schema/postgres.sql"
	case DriverSQLite:
		file = "schema/sqlite.sql"
	default:
		return nil, fmt.Errorf("no schema for dialect %q", dialect)
	}

	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var stmts []string
	for _, stmt := range strings.Split(string(raw), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, dialect string, exec ExecFunc) error {
	stmts, err := Schema(dialect)
	if err != nil {
		return err
	}

	for i, stmt := range stmts {
		if err := exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply statement %d: %w", i+1, err)
		}
	}

	log.Info().Str("dialect", dialect).Int("statements", len(stmts)).Msg("Schema applied")
	return nil
}

// Migrate applies the schema through the database/sql handle.
func (db *SQLDB) Migrate(ctx context.Context) error {
	return Migrate(ctx, db.Driver, func(ctx context.Context, stmt string) error {
		_, err := db.DB.ExecContext(ctx, stmt)
		return err
	})
}

// Migrate applies the Postgres schema through the pool.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	return Migrate(ctx, DriverPostgres, func(ctx context.Context, stmt string) error {
		_, err := db.Pool.Exec(ctx, stmt)
		return err
	})
}
