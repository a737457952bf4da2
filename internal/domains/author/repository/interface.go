package repository

import (
	"context"

	"github.com/google/uuid"

	"book-management/internal/domains/author/model"
)

// RepositoryInterface is data access for authors.
// Writes join the transaction carried by ctx when there is one.
type RepositoryInterface interface {
	Save(ctx context.Context, a *model.Author) error
	FindAll(ctx context.Context) ([]*model.Author, error)
	// FindByID returns model.ErrAuthorNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	// FindByIDs returns the subset of ids that exist, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Author, error)
	// Update returns model.ErrAuthorNotFound when no row matches.
	Update(ctx context.Context, a *model.Author) error
}
