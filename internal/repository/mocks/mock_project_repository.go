package mocks

import (
	"context"

	"portfolio/internal/model"
	"portfolio/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context, order repository.Order) ([]model.Project, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Insert(ctx context.Context, p *model.Project) (int, error) {
	args := m.Called(ctx, p)
	return args.Int(0), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, id int, p *model.Project) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
