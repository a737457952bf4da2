package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management/internal/domains/book/model"
	"book-management/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
	tx   database.TxManager
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
		tx:   database.NewPgxTxManager(pool),
	}
}

const selectBookColumns = `SELECT id, title, price, publication_status FROM books`

func (r *postgresRepository) Save(ctx context.Context, b *model.Book) error {
	query := `
        INSERT INTO books (id, title, price, publication_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
    `

	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		conn := database.PgxConn(ctx, r.pool)
		now := time.Now().UTC()
		if _, err := conn.Exec(ctx, query, b.ID, b.Title, b.Price, b.Status.String(), now); err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}
		return r.insertAuthorLinks(ctx, conn, b)
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	books, err := r.findBooks(ctx, selectBookColumns+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, model.ErrBookNotFound.Withf("book %s not found", id)
	}
	return books[0], nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	return r.findBooks(ctx, selectBookColumns+` ORDER BY created_at, id`)
}

func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Book, error) {
	rows, err := database.PgxConn(ctx, r.pool).Query(ctx,
		`SELECT book_id FROM book_authors WHERE author_id = $1`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book ids by author: %w", err)
	}
	bookIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book ids: %w", err)
	}
	if len(bookIDs) == 0 {
		return []*model.Book{}, nil
	}

	query := selectBookColumns + ` WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`
	return r.findBooks(ctx, query, bookIDs)
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
        UPDATE books
        SET title = $2, price = $3, publication_status = $4, updated_at = $5
        WHERE id = $1
    `

	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		conn := database.PgxConn(ctx, r.pool)
		tag, err := conn.Exec(ctx, query, b.ID, b.Title, b.Price, b.Status.String(), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound.Withf("book %s not found", b.ID)
		}

		if _, err := conn.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to delete book authors: %w", err)
		}
		return r.insertAuthorLinks(ctx, conn, b)
	})
}

func (r *postgresRepository) insertAuthorLinks(ctx context.Context, conn database.PgxExecutor, b *model.Book) error {
	batch := &pgx.Batch{}
	for i, authorID := range b.AuthorIDs {
		batch.Queue(`INSERT INTO book_authors (book_id, author_id, position) VALUES ($1, $2, $3)`,
			b.ID, authorID, i)
	}
	if err := conn.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert book authors: %w", err)
	}
	return nil
}

// findBooks loads the book rows, then every author link of those books in one query.
func (r *postgresRepository) findBooks(ctx context.Context, query string, args ...any) ([]*model.Book, error) {
	conn := database.PgxConn(ctx, r.pool)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[bookRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}
	if len(records) == 0 {
		return []*model.Book{}, nil
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}

	linkRows, err := conn.Query(ctx, `
        SELECT book_id, author_id FROM book_authors
        WHERE book_id = ANY($1::uuid[])
        ORDER BY book_id, position
    `, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query book authors: %w", err)
	}
	links, err := pgx.CollectRows(linkRows, pgx.RowToStructByPos[bookAuthorRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book authors: %w", err)
	}

	return restoreBooks(records, links)
}
