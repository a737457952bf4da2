package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management/internal/domains/author/model"
	"book-management/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const selectAuthorColumns = `SELECT id, name, date_of_birth FROM authors`

func (r *postgresRepository) Save(ctx context.Context, a *model.Author) error {
	query := `
        INSERT INTO authors (id, name, date_of_birth, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4)
    `

	now := time.Now().UTC()
	if _, err := database.PgxConn(ctx, r.pool).Exec(ctx, query, a.ID, a.Name, a.DateOfBirth, now); err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	query := selectAuthorColumns + ` ORDER BY created_at, id`

	rows, err := database.PgxConn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := selectAuthorColumns + ` WHERE id = $1`

	var (
		rowID       uuid.UUID
		name        string
		dateOfBirth time.Time
	)
	err := database.PgxConn(ctx, r.pool).QueryRow(ctx, query, id).Scan(&rowID, &name, &dateOfBirth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound.Withf("author %s not found", id)
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return model.RestoreAuthor(rowID, name, dateOfBirth)
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Author, error) {
	if len(ids) == 0 {
		return []*model.Author{}, nil
	}

	query := selectAuthorColumns + ` WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`

	rows, err := database.PgxConn(ctx, r.pool).Query(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query authors by ids: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `
        UPDATE authors
        SET name = $2, date_of_birth = $3, updated_at = $4
        WHERE id = $1
    `

	tag, err := database.PgxConn(ctx, r.pool).Exec(ctx, query, a.ID, a.Name, a.DateOfBirth, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound.Withf("author %s not found", a.ID)
	}
	return nil
}

func collectAuthors(rows pgx.Rows) ([]*model.Author, error) {
	defer rows.Close()

	authors := []*model.Author{}
	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			dateOfBirth time.Time
		)
		if err := rows.Scan(&id, &name, &dateOfBirth); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}

		a, err := model.RestoreAuthor(id, name, dateOfBirth)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}
	return authors, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
