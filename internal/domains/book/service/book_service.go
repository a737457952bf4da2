package service

import (
	"context"

	"github.com/google/uuid"

	authormodel "book-management/internal/domains/author/model"
	authorrepo "book-management/internal/domains/author/repository"
	"book-management/internal/domains/book/model"
	"book-management/internal/domains/book/repository"
	"book-management/pkg/database"
)

// bookService implements ServiceInterface
type bookService struct {
	repo       repository.RepositoryInterface
	authorRepo authorrepo.RepositoryInterface
	tx         database.TxManager
}

// NewBookService creates a new book service instance
func NewBookService(
	repo repository.RepositoryInterface,
	authorRepo authorrepo.RepositoryInterface,
	tx database.TxManager,
) ServiceInterface {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		tx:         tx,
	}
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]model.BookResponse, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(books), nil
}

func (s *bookService) GetBooksByAuthor(ctx context.Context, authorID string) ([]model.BookResponse, error) {
	id, err := uuid.Parse(authorID)
	if err != nil {
		return nil, authormodel.ErrAuthorNotFound.Withf("author id %q is not a UUID", authorID)
	}

	books, err := s.repo.FindByAuthorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponses(books), nil
}

func (s *bookService) RegisterBook(ctx context.Context, req model.BookRegisterRequest) (*model.BookResponse, error) {
	status, err := model.ParsePublicationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var b *model.Book
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validateAuthors(ctx, req.AuthorIDs); err != nil {
			return err
		}

		b, err = model.NewBook(req.Title, model.PriceValue(req.Price), req.AuthorIDs, status)
		if err != nil {
			return err
		}

		return s.repo.Save(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return b.ToResponse(), nil
}

func (s *bookService) UpdateBook(ctx context.Context, id string, req model.BookUpdateRequest) (*model.BookResponse, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrBookNotFound.Withf("book id %q is not a UUID", id)
	}

	status, err := model.ParsePublicationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var updated *model.Book
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, bookID)
		if err != nil {
			return err
		}

		if err := s.validateAuthors(ctx, req.AuthorIDs); err != nil {
			return err
		}

		updated, err = existing.Update(req.Title, model.PriceValue(req.Price), req.AuthorIDs, status)
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

// validateAuthors checks format, then duplicates, then that every author exists.
func (s *bookService) validateAuthors(ctx context.Context, authorIDs []string) error {
	ids, err := model.ParseAuthorIDs(authorIDs)
	if err != nil {
		return err
	}

	if model.HasDuplicates(ids) {
		return model.ErrAuthorsDuplicate.Withf("author ids %v", authorIDs)
	}

	authors, err := s.authorRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(authors) != len(ids) {
		return model.ErrAuthorsMissing.Withf("found %d of %d authors", len(authors), len(ids))
	}
	return nil
}

func toResponses(books []*model.Book) []model.BookResponse {
	res := make([]model.BookResponse, len(books))
	for i, b := range books {
		res[i] = *b.ToResponse()
	}
	return res
}
