package repository

import (
	"context"

	"portfolio/internal/model"
)

// ProjectRepository defines data access for client projects using SQL only.
// No business logic here — strictly persistence operations.
type ProjectRepository interface {
	// List returns all projects ordered by created_at in the given direction,
	// id as tiebreaker. An empty table yields an empty slice, not an error.
	List(ctx context.Context, order Order) ([]model.Project, error)

	// Insert persists a new project. The database assigns id and created_at;
	// the new id is returned.
	Insert(ctx context.Context, p *model.Project) (int, error)

	// Update replaces all mutable fields of the row matching id. A missing id
	// is a no-op, not an error.
	Update(ctx context.Context, id int, p *model.Project) error

	// Delete removes the row matching id. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id int) error
}
