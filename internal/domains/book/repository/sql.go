package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"book-management/internal/domains/book/model"
	"book-management/pkg/database"
)

// sqlRepository implements RepositoryInterface on database/sql (lib/pq or go-sqlite3),
// building queries with goqu in the dialect matching the driver.
type sqlRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
	tx      database.TxManager
}

// NewSQLRepository creates a book repository for a sqlx handle.
func NewSQLRepository(db *sqlx.DB) RepositoryInterface {
	return &sqlRepository{
		db:      db,
		dialect: goqu.Dialect(db.DriverName()),
		tx:      database.NewSQLXTxManager(db),
	}
}

func (r *sqlRepository) selectBooks() *goqu.SelectDataset {
	return r.dialect.From("books").
		Select("id", "title", "price", "publication_status").
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		Prepared(true)
}

func (r *sqlRepository) Save(ctx context.Context, b *model.Book) error {
	now := time.Now().UTC()
	query, args, err := r.dialect.Insert("books").
		Rows(goqu.Record{
			"id":                 b.ID.String(),
			"title":              b.Title,
			"price":              b.Price,
			"publication_status": b.Status.String(),
			"created_at":         now,
			"updated_at":         now,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build insert book query: %w", err)
	}

	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := database.SQLXConn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}
		return r.insertAuthorLinks(ctx, b)
	})
}

func (r *sqlRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	books, err := r.findBooks(ctx, r.selectBooks().Where(goqu.C("id").Eq(id.String())))
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, model.ErrBookNotFound.Withf("book %s not found", id)
	}
	return books[0], nil
}

func (r *sqlRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	return r.findBooks(ctx, r.selectBooks())
}

func (r *sqlRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Book, error) {
	query, args, err := r.dialect.From("book_authors").
		Select("book_id").
		Where(goqu.C("author_id").Eq(authorID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book ids by author query: %w", err)
	}

	var bookIDs []string
	if err := database.SQLXConn(ctx, r.db).SelectContext(ctx, &bookIDs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query book ids by author: %w", err)
	}
	if len(bookIDs) == 0 {
		return []*model.Book{}, nil
	}

	return r.findBooks(ctx, r.selectBooks().Where(goqu.C("id").In(bookIDs)))
}

func (r *sqlRepository) Update(ctx context.Context, b *model.Book) error {
	query, args, err := r.dialect.Update("books").
		Set(goqu.Record{
			"title":              b.Title,
			"price":              b.Price,
			"publication_status": b.Status.String(),
			"updated_at":         time.Now().UTC(),
		}).
		Where(goqu.C("id").Eq(b.ID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build update book query: %w", err)
	}

	deleteQuery, deleteArgs, err := r.dialect.Delete("book_authors").
		Where(goqu.C("book_id").Eq(b.ID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build delete book authors query: %w", err)
	}

	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		conn := database.SQLXConn(ctx, r.db)

		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return model.ErrBookNotFound.Withf("book %s not found", b.ID)
		}

		if _, err := conn.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("failed to delete book authors: %w", err)
		}
		return r.insertAuthorLinks(ctx, b)
	})
}

func (r *sqlRepository) insertAuthorLinks(ctx context.Context, b *model.Book) error {
	rows := make([]any, len(b.AuthorIDs))
	for i, authorID := range b.AuthorIDs {
		rows[i] = goqu.Record{
			"book_id":   b.ID.String(),
			"author_id": authorID.String(),
			"position":  i,
		}
	}

	query, args, err := r.dialect.Insert("book_authors").Rows(rows...).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build insert book authors query: %w", err)
	}
	if _, err := database.SQLXConn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert book authors: %w", err)
	}
	return nil
}

// findBooks loads the book rows, then every author link of those books in one query.
func (r *sqlRepository) findBooks(ctx context.Context, ds *goqu.SelectDataset) ([]*model.Book, error) {
	conn := database.SQLXConn(ctx, r.db)

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build books query: %w", err)
	}
	var records []bookRecord
	if err := conn.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	if len(records) == 0 {
		return []*model.Book{}, nil
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}

	query, args, err = r.dialect.From("book_authors").
		Select("book_id", "author_id").
		Where(goqu.C("book_id").In(ids)).
		Order(goqu.C("book_id").Asc(), goqu.C("position").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book authors query: %w", err)
	}
	var links []bookAuthorRecord
	if err := conn.SelectContext(ctx, &links, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query book authors: %w", err)
	}

	return restoreBooks(records, links)
}
