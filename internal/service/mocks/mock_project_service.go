package mocks

import (
	"context"
	"io"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, order repository.Order) ([]model.Project, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, in service.ProjectInput) (int, error) {
	args := m.Called(ctx, in)
	return args.Int(0), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id int, in service.ProjectInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockProjectService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (string, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	return args.String(0), args.Error(1)
}
