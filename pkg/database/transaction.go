package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// TxManager runs fn inside one transaction. The transaction travels in the context passed to
// fn, so repositories called from fn join it. Nested calls reuse the outer transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TxFunc runs inside a pgx transaction.
type TxFunc func(pgx.Tx) error

// WithTransaction wraps fn in a pgx transaction.
// Rollback on error or panic, commit otherwise.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TxFunc) (err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ════════════════════════════════════════════════════════════════
// pgx
// ════════════════════════════════════════════════════════════════

type pgxTxKey struct{}

// PgxExecutor is the subset shared by *pgxpool.Pool and pgx.Tx.
type PgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PgxConn returns the transaction carried by ctx, or pool when there is none.
func PgxConn(ctx context.Context, pool *pgxpool.Pool) PgxExecutor {
	if tx, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

type PgxTxManager struct {
	pool *pgxpool.Pool
}

func NewPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

func (m *PgxTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return WithTransaction(ctx, m.pool, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, pgxTxKey{}, tx))
	})
}

// ════════════════════════════════════════════════════════════════
// database/sql (sqlx)
// ════════════════════════════════════════════════════════════════

type sqlxTxKey struct{}

// SQLXExecutor is the subset shared by *sqlx.DB and *sqlx.Tx.
type SQLXExecutor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// SQLXConn returns the transaction carried by ctx, or db when there is none.
func SQLXConn(ctx context.Context, db *sqlx.DB) SQLXExecutor {
	if tx, ok := ctx.Value(sqlxTxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// WithSQLXTransaction is WithTransaction for database/sql drivers.
func WithSQLXTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type SQLXTxManager struct {
	db *sqlx.DB
}

func NewSQLXTxManager(db *sqlx.DB) *SQLXTxManager {
	return &SQLXTxManager{db: db}
}

func (m *SQLXTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(sqlxTxKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}
	return WithSQLXTransaction(ctx, m.db, func(tx *sqlx.Tx) error {
		return fn(context.WithValue(ctx, sqlxTxKey{}, tx))
	})
}
