// Package repositorytest provides a testify mock of the author repository.
package repositorytest

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"book-management/internal/domains/author/model"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, a *model.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	args := m.Called(ctx)
	authors, _ := args.Get(0).([]*model.Author)
	return authors, args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Author)
	return a, args.Error(1)
}

func (m *MockRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Author, error) {
	args := m.Called(ctx, ids)
	authors, _ := args.Get(0).([]*model.Author)
	return authors, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a *model.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
