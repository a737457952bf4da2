package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"book-management/internal/domains/author/model"
	"book-management/internal/shared/apperror"
	"book-management/pkg/database"
)

// sqlRepository implements RepositoryInterface on database/sql (lib/pq or go-sqlite3),
// building queries with goqu in the dialect matching the driver.
type sqlRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

// NewSQLRepository creates an author repository for a sqlx handle.
func NewSQLRepository(db *sqlx.DB) RepositoryInterface {
	return &sqlRepository{
		db:      db,
		dialect: goqu.Dialect(db.DriverName()),
	}
}

type authorRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	DateOfBirth time.Time `db:"date_of_birth"`
}

func (r *sqlRepository) selectAuthors() *goqu.SelectDataset {
	return r.dialect.From("authors").
		Select("id", "name", "date_of_birth").
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		Prepared(true)
}

func (r *sqlRepository) Save(ctx context.Context, a *model.Author) error {
	now := time.Now().UTC()
	query, args, err := r.dialect.Insert("authors").
		Rows(goqu.Record{
			"id":            a.ID.String(),
			"name":          a.Name,
			"date_of_birth": a.DateOfBirth,
			"created_at":    now,
			"updated_at":    now,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build insert author query: %w", err)
	}

	if _, err := database.SQLXConn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	return nil
}

func (r *sqlRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	query, args, err := r.selectAuthors().ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build list authors query: %w", err)
	}

	var rows []authorRow
	if err := database.SQLXConn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	return toAuthors(rows)
}

func (r *sqlRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query, args, err := r.selectAuthors().Where(goqu.C("id").Eq(id.String())).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build get author query: %w", err)
	}

	var row authorRow
	if err := database.SQLXConn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAuthorNotFound.Withf("author %s not found", id)
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return row.toEntity()
}

func (r *sqlRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Author, error) {
	if len(ids) == 0 {
		return []*model.Author{}, nil
	}

	query, args, err := r.selectAuthors().Where(goqu.C("id").In(uuidStrings(ids))).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build authors by ids query: %w", err)
	}

	var rows []authorRow
	if err := database.SQLXConn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query authors by ids: %w", err)
	}
	return toAuthors(rows)
}

func (r *sqlRepository) Update(ctx context.Context, a *model.Author) error {
	query, args, err := r.dialect.Update("authors").
		Set(goqu.Record{
			"name":          a.Name,
			"date_of_birth": a.DateOfBirth,
			"updated_at":    time.Now().UTC(),
		}).
		Where(goqu.C("id").Eq(a.ID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build update author query: %w", err)
	}

	res, err := database.SQLXConn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrAuthorNotFound.Withf("author %s not found", a.ID)
	}
	return nil
}

func (row authorRow) toEntity() (*model.Author, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, apperror.ErrCorruptedData.Withf("author id %q is not a UUID", row.ID).Wrap(err)
	}
	return model.RestoreAuthor(id, row.Name, row.DateOfBirth)
}

func toAuthors(rows []authorRow) ([]*model.Author, error) {
	authors := make([]*model.Author, 0, len(rows))
	for _, row := range rows {
		a, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, nil
}
