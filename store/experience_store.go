package store

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/api/models"
)

type ExperienceStore struct {
	db *sql.DB
}

// NewExperienceStore creates a new ExperienceStore instance.
func NewExperienceStore(db *sql.DB) *ExperienceStore {
	return &ExperienceStore{db: db}
}

func (s *ExperienceStore) List(ctx context.Context) ([]models.Experience, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company, position, description, start_date, end_date,
		       current, technologies, achievements, created_at
		FROM experience
		ORDER BY start_date DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	entries := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(
			&e.ID, &e.Company, &e.Position, &e.Description, &e.StartDate, &e.EndDate,
			&e.Current, &e.Technologies, &e.Achievements, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing experience: %w", err)
	}

	return entries, nil
}

func (s *ExperienceStore) Create(ctx context.Context, req models.ExperienceRequest) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO experience (company, position, description, start_date, end_date, current, technologies, achievements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, req.Company, req.Position, req.Description, req.StartDate, req.EndDate,
		models.BoolFrom(req.Current), req.Technologies, req.Achievements)
	if err != nil {
		return 0, fmt.Errorf("failed to create experience: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new experience id: %w", err)
	}
	return int(id), nil
}

func (s *ExperienceStore) Update(ctx context.Context, id int, req models.ExperienceRequest) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE experience
		SET company = ?, position = ?, description = ?, start_date = ?, end_date = ?,
		    current = ?, technologies = ?, achievements = ?
		WHERE id = ?;
	`, req.Company, req.Position, req.Description, req.StartDate, req.EndDate,
		models.BoolFrom(req.Current), req.Technologies, req.Achievements, id)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
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

func (s *ExperienceStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM experience WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
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
