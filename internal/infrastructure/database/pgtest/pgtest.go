// Package pgtest connects tests to a real PostgreSQL named by TEST_POSTGRES_URL.
package pgtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"book-management/internal/infrastructure/database"
)

const EnvURL = "TEST_POSTGRES_URL"

// New returns a pool on an empty, migrated schema. The test is skipped when EnvURL is unset.
func New(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set", EnvURL)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, database.DriverPostgres, func(ctx context.Context, stmt string) error {
		_, err := pool.Exec(ctx, stmt)
		return err
	}))
	_, err = pool.Exec(ctx, `TRUNCATE book_authors, books, authors`)
	require.NoError(t, err)

	return pool
}
