package repository

import (
	"context"

	"github.com/google/uuid"

	"book-management/internal/domains/book/model"
)

// RepositoryInterface is data access for books and the book_authors link table.
// Save and Update write the book row and its author links atomically, joining the
// transaction carried by ctx when there is one.
type RepositoryInterface interface {
	Save(ctx context.Context, b *model.Book) error
	// FindByID returns model.ErrBookNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindAll(ctx context.Context) ([]*model.Book, error)
	// FindByAuthorID returns an empty list for an author with no books.
	FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Book, error)
	// Update replaces the author links. Returns model.ErrBookNotFound when no row matches.
	Update(ctx context.Context, b *model.Book) error
}
