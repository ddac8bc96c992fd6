package service

import (
	"context"
	"errors"
	"testing"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	repoMocks "portfolio/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         ProjectInput
		setupMocks func(mRepo *repoMocks.MockProjectRepository)
		wantID     int
		wantErr    error
	}{
		{
			name: "happy path",
			in: ProjectInput{
				ClientName:  "Acme",
				Category:    "Web",
				Description: "company site",
				TechStack:   "Go, Fiber",
				LiveURL:     "https://acme.dev",
				Year:        "2026",
			},
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Project) bool {
					return p.ClientName == "Acme" && p.Category == "Web" && p.Description == "company site"
				})).Return(7, nil)
			},
			wantID: 7,
		},
		{
			name:    "missing client name",
			in:      ProjectInput{Category: "Web", Description: "site"},
			wantErr: ErrMissingRequired,
		},
		{
			name:    "whitespace-only description",
			in:      ProjectInput{ClientName: "Acme", Category: "Web", Description: "   "},
			wantErr: ErrMissingRequired,
		},
		{
			name: "storage failure",
			in:   ProjectInput{ClientName: "Acme", Category: "Web", Description: "site"},
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Insert", ctx, mock.Anything).Return(0, errors.New("write failed"))
			},
			wantErr: nil, // wrapped storage error, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProjectRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := NewProjectService(mRepo)

			id, err := svc.Create(ctx, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, id)
			case tt.name == "storage failure":
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), "write failed")
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Create_ValidationSkipsRepository(t *testing.T) {
	mRepo := new(repoMocks.MockProjectRepository)
	svc := NewProjectService(mRepo)

	_, err := svc.Create(context.Background(), ProjectInput{})

	assert.ErrorIs(t, err, ErrValidation)
	mRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	valid := ProjectInput{ClientName: "Acme", Category: "Web", Description: "site"}

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockProjectRepository)
		mRepo.On("Update", ctx, 3, mock.MatchedBy(func(p *model.Project) bool {
			return p.ClientName == "Acme"
		})).Return(nil)
		svc := NewProjectService(mRepo)

		assert.NoError(t, svc.Update(ctx, 3, valid))
		mRepo.AssertExpectations(t)
	})

	t.Run("id required", func(t *testing.T) {
		svc := NewProjectService(new(repoMocks.MockProjectRepository))
		assert.ErrorIs(t, svc.Update(ctx, 0, valid), ErrIDRequired)
	})

	t.Run("required fields checked on update too", func(t *testing.T) {
		svc := NewProjectService(new(repoMocks.MockProjectRepository))
		assert.ErrorIs(t, svc.Update(ctx, 3, ProjectInput{ClientName: "Acme"}), ErrMissingRequired)
	})

	t.Run("storage failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockProjectRepository)
		mRepo.On("Update", ctx, 3, mock.Anything).Return(errors.New("write failed"))
		svc := NewProjectService(mRepo)

		err := svc.Update(ctx, 3, valid)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockProjectRepository)
		mRepo.On("Delete", ctx, 3).Return(nil)
		svc := NewProjectService(mRepo)

		assert.NoError(t, svc.Delete(ctx, 3))
		mRepo.AssertExpectations(t)
	})

	t.Run("id required", func(t *testing.T) {
		svc := NewProjectService(new(repoMocks.MockProjectRepository))
		assert.ErrorIs(t, svc.Delete(ctx, -1), ErrIDRequired)
	})

	t.Run("storage failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockProjectRepository)
		mRepo.On("Delete", ctx, 3).Return(errors.New("write failed"))
		svc := NewProjectService(mRepo)

		assert.Error(t, svc.Delete(ctx, 3))
	})
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes order through", func(t *testing.T) {
		mRepo := new(repoMocks.MockProjectRepository)
		mRepo.On("List", ctx, repository.OrderDesc).Return([]model.Project{{ID: 2}, {ID: 1}}, nil)
		svc := NewProjectService(mRepo)

		projects, err := svc.List(ctx, repository.OrderDesc)

		assert.NoError(t, err)
		assert.Len(t, projects, 2)
		mRepo.AssertExpectations(t)
	})

	t.Run("propagates errors", func(t *testing.T) {
		mRepo := new(repoMocks.MockProjectRepository)
		mRepo.On("List", ctx, repository.OrderAsc).Return(nil, errors.New("store unreachable"))
		svc := NewProjectService(mRepo)

		projects, err := svc.List(ctx, repository.OrderAsc)

		assert.Error(t, err)
		assert.Nil(t, projects)
	})
}
