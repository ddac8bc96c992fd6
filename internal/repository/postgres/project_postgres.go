package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

// List returns every project ordered by creation time.
func (r *ProjectPostgres) List(ctx context.Context, order repository.Order) ([]model.Project, error) {
	dir := "ASC"
	if order == repository.OrderDesc {
		dir = "DESC"
	}
	// Direction comes from the two-valued Order type, never from user input.
	q := fmt.Sprintf(`
		SELECT id, client_name, category, description, tech_stack, live_url, image_url, year, created_at
		FROM client_projects
		ORDER BY created_at %s, id %s
	`, dir, dir)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID,
			&p.ClientName,
			&p.Category,
			&p.Description,
			&p.TechStack,
			&p.LiveURL,
			&p.ImageURL,
			&p.Year,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// Insert persists a new project row; id and created_at are assigned by the database.
func (r *ProjectPostgres) Insert(ctx context.Context, p *model.Project) (int, error) {
	const q = `
		INSERT INTO client_projects (client_name, category, description, tech_stack, live_url, image_url, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ClientName,
		p.Category,
		p.Description,
		p.TechStack,
		p.LiveURL,
		p.ImageURL,
		p.Year,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Update replaces all mutable fields of the row matching id. A missing id is
// a no-op: RowsAffected is ignored the same way Delete ignores it.
func (r *ProjectPostgres) Update(ctx context.Context, id int, p *model.Project) error {
	const q = `
		UPDATE client_projects
		SET client_name = $1, category = $2, description = $3, tech_stack = $4,
		    live_url = $5, image_url = $6, year = $7
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, q,
		p.ClientName,
		p.Category,
		p.Description,
		p.TechStack,
		p.LiveURL,
		p.ImageURL,
		p.Year,
		id,
	)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// Delete removes a project by ID. It does not return an error if the row does not exist.
func (r *ProjectPostgres) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM client_projects WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
