package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// SQLDB wraps a database/sql handle opened through sqlx.
type SQLDB struct {
	DB     *sqlx.DB
	Driver string
}

// SQLiteDSN enables foreign keys and waits on locks instead of failing with SQLITE_BUSY.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
}

// OpenPostgres opens a lib/pq backed handle with the pool limits of cfg.
func OpenPostgres(ctx context.Context, cfg *DBConfig) (*SQLDB, error) {
	db, err := open(ctx, DriverPostgres, cfg.URL())
	if err != nil {
		return nil, err
	}

	db.DB.SetMaxOpenConns(int(cfg.MaxConns))
	db.DB.SetMaxIdleConns(int(cfg.MinConns))
	db.DB.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.DB.SetConnMaxIdleTime(cfg.MaxConnIdleTime)
	return db, nil
}

// OpenSQLite opens the database file at path.
// SQLite allows one writer, so the pool is limited to a single connection.
func OpenSQLite(ctx context.Context, path string) (*SQLDB, error) {
	db, err := open(ctx, DriverSQLite, SQLiteDSN(path))
	if err != nil {
		return nil, err
	}

	db.DB.SetMaxOpenConns(1)
	return db, nil
}

func open(ctx context.Context, driver, dsn string) (*SQLDB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	sqlDB := &SQLDB{DB: db, Driver: driver}
	if err := sqlDB.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return sqlDB, nil
}
