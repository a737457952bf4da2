package service

import (
	"context"

	"github.com/google/uuid"

	"book-management/internal/domains/author/model"
	"book-management/internal/domains/author/repository"
	"book-management/pkg/database"
)

// authorService implements ServiceInterface
type authorService struct {
	repo repository.RepositoryInterface
	tx   database.TxManager
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface, tx database.TxManager) ServiceInterface {
	return &authorService{
		repo: repo,
		tx:   tx,
	}
}

func (s *authorService) GetAllAuthors(ctx context.Context) ([]model.AuthorResponse, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]model.AuthorResponse, len(authors))
	for i, a := range authors {
		res[i] = *a.ToResponse()
	}
	return res, nil
}

func (s *authorService) RegisterAuthor(ctx context.Context, req model.AuthorRegisterRequest) (*model.AuthorResponse, error) {
	dateOfBirth, err := model.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	a, err := model.NewAuthor(req.Name, dateOfBirth)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id string, req model.AuthorUpdateRequest) (*model.AuthorResponse, error) {
	authorID, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrAuthorNotFound.Withf("author id %q is not a UUID", id)
	}

	dateOfBirth, err := model.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	var updated *model.Author
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, authorID)
		if err != nil {
			return err
		}

		updated, err = existing.Update(req.Name, dateOfBirth)
		if err != nil {
			return err
		}

		return s.repo.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}
