package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var (
	// ErrValidation marks failures a client can fix; handlers map it to 400.
	ErrValidation = errors.New("validation failed")

	ErrIDRequired      = fmt.Errorf("%w: a positive id is required", ErrValidation)
	ErrMissingRequired = fmt.Errorf("%w: clientName, category and description are required", ErrValidation)
)

// ProjectInput carries the mutable project fields as submitted by the admin
// UI. Field names follow the client-side JSON contract.
type ProjectInput struct {
	ClientName  string `json:"clientName"`
	Category    string `json:"category"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	LiveURL     string `json:"liveUrl"`
	ImageURL    string `json:"imageUrl"`
	Year        string `json:"year"`
}

// ProjectService defines the use cases for managing portfolio projects.
type ProjectService interface {
	// List returns all projects in the requested creation order.
	List(ctx context.Context, order repository.Order) ([]model.Project, error)

	// Create validates presence of the required fields and persists a new
	// project, returning its assigned id.
	Create(ctx context.Context, in ProjectInput) (int, error)

	// Update replaces all mutable fields of the project matching id.
	// Updating a non-existent id succeeds without effect.
	Update(ctx context.Context, id int, in ProjectInput) error

	// Delete removes the project matching id; deleting twice is a no-op the
	// second time.
	Delete(ctx context.Context, id int) error
}

// projectService is a concrete implementation of ProjectService.
type projectService struct {
	repo repository.ProjectRepository
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context, order repository.Order) ([]model.Project, error) {
	return s.repo.List(ctx, order)
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (int, error) {
	p, err := in.toProject()
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return id, nil
}

func (s *projectService) Update(ctx context.Context, id int, in ProjectInput) error {
	if id <= 0 {
		return ErrIDRequired
	}
	p, err := in.toProject()
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, p); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// toProject applies presence checks and maps the input onto the domain model.
// Required fields are never empty after a successful write.
func (in ProjectInput) toProject() (*model.Project, error) {
	clientName := strings.TrimSpace(in.ClientName)
	category := strings.TrimSpace(in.Category)
	description := strings.TrimSpace(in.Description)
	if clientName == "" || category == "" || description == "" {
		return nil, ErrMissingRequired
	}
	return &model.Project{
		ClientName:  clientName,
		Category:    category,
		Description: description,
		TechStack:   in.TechStack,
		LiveURL:     in.LiveURL,
		ImageURL:    in.ImageURL,
		Year:        in.Year,
	}, nil
}
