package store

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/api/models"
)

type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore instance.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// List returns all projects, featured ones first, newest first within that.
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, long_description, image_url, image_public_id,
		       live_url, github_url, technologies, technical_skills, category, featured, created_at
		FROM projects
		ORDER BY featured DESC, created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.ImageURL, &p.ImagePublicID,
			&p.LiveURL, &p.GithubURL, &p.Technologies, &p.TechnicalSkills, &p.Category, &p.Featured, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing projects: %w", err)
	}

	return projects, nil
}

func (s *ProjectStore) Create(ctx context.Context, req models.ProjectRequest) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (title, description, long_description, image_url, image_public_id,
			live_url, github_url, technologies, technical_skills, category, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, req.Title, req.Description, req.LongDescription, req.ImageURL, req.ImagePublicID,
		req.LiveURL, req.GithubURL, req.Technologies, req.TechnicalSkills, req.Category,
		models.BoolFrom(req.Featured))
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new project id: %w", err)
	}
	return int(id), nil
}

func (s *ProjectStore) Update(ctx context.Context, id int, req models.ProjectRequest) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, long_description = ?, image_url = ?, image_public_id = ?,
		    live_url = ?, github_url = ?, technologies = ?, technical_skills = ?, category = ?, featured = ?
		WHERE id = ?;
	`, req.Title, req.Description, req.LongDescription, req.ImageURL, req.ImagePublicID,
		req.LiveURL, req.GithubURL, req.Technologies, req.TechnicalSkills, req.Category,
		models.BoolFrom(req.Featured), id)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns the totals behind the public project counter.
func (s *ProjectStore) Counts(ctx context.Context) (models.ProjectCounts, error) {
	counts := models.ProjectCounts{Categories: []models.CategoryCount{}}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects;`).Scan(&counts.Total)
	if err != nil {
		return counts, fmt.Errorf("failed to count projects: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE featured = 1;`).Scan(&counts.Featured)
	if err != nil {
		return counts, fmt.Errorf("failed to count featured projects: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) as count
		FROM projects
		GROUP BY category
		ORDER BY count DESC;
	`)
	if err != nil {
		return counts, fmt.Errorf("failed to count projects by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return counts, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts.Categories = append(counts.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("row error while counting categories: %w", err)
	}

	return counts, nil
}
