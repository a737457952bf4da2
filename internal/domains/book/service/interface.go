package service

import (
	"context"

	"book-management/internal/domains/book/model"
)

// ServiceInterface is the business logic for books.
type ServiceInterface interface {
	GetAllBooks(ctx context.Context) ([]model.BookResponse, error)
	// GetBooksByAuthor answers author not found for a malformed author id.
	GetBooksByAuthor(ctx context.Context, authorID string) ([]model.BookResponse, error)
	RegisterBook(ctx context.Context, req model.BookRegisterRequest) (*model.BookResponse, error)
	// UpdateBook answers model.ErrBookNotFound for malformed and unknown ids alike.
	UpdateBook(ctx context.Context, id string, req model.BookUpdateRequest) (*model.BookResponse, error)
}
