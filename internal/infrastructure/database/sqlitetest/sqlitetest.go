// Package sqlitetest opens throwaway SQLite databases with the application schema applied.
package sqlitetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"book-management/internal/infrastructure/database"
)

// New returns a migrated database in t.TempDir(), closed when the test ends.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db.DB
}
