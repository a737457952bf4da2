// Package repositorytest provides a testify mock of the book repository.
package repositorytest

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"book-management/internal/domains/book/model"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, b *model.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Book)
	return b, args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]*model.Book)
	return books, args.Error(1)
}

func (m *MockRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Book, error) {
	args := m.Called(ctx, authorID)
	books, _ := args.Get(0).([]*model.Book)
	return books, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, b *model.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
