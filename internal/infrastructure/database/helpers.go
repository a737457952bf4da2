package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// Ping kiểm tra database connection có còn sống và responsive không
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close đóng tất cả connections trong pool, gọi nhiều lần vẫn an toàn.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("Closing database connection pool")
	db.Pool.Close()
	db.Pool = nil
	return nil
}

// Ping checks the database/sql connection.
func (db *SQLDB) Ping(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// HealthCheck pings the database and logs pool statistics.
func (db *SQLDB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	stats := db.DB.Stats()
	log.Debug().
		Str("driver", db.Driver).
		Int("open_conns", stats.OpenConnections).
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Msg("Database health check passed")
	return nil
}

// Close closes the database/sql handle. Safe to call multiple times.
func (db *SQLDB) Close() error {
	if db.DB == nil {
		return nil
	}

	log.Info().Str("driver", db.Driver).Msg("Closing database connection")
	err := db.DB.Close()
	db.DB = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
