package service

import (
	"context"

	"book-management/internal/domains/author/model"
)

// ServiceInterface is the business logic for authors.
type ServiceInterface interface {
	GetAllAuthors(ctx context.Context) ([]model.AuthorResponse, error)
	RegisterAuthor(ctx context.Context, req model.AuthorRegisterRequest) (*model.AuthorResponse, error)
	// UpdateAuthor answers model.ErrAuthorNotFound for malformed and unknown ids alike.
	UpdateAuthor(ctx context.Context, id string, req model.AuthorUpdateRequest) (*model.AuthorResponse, error)
}
