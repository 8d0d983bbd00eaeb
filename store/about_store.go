package store

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/api/models"
)

type AboutStore struct {
	db *sql.DB
}

// NewAboutStore creates a new AboutStore instance.
func NewAboutStore(db *sql.DB) *AboutStore {
	return &AboutStore{db: db}
}

func (s *AboutStore) List(ctx context.Context) ([]models.AboutSection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, section, title, content, updated_at
		FROM about_content
		ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list about content: %w", err)
	}
	defer rows.Close()

	sections := []models.AboutSection{}
	for rows.Next() {
		var a models.AboutSection
		if err := rows.Scan(&a.ID, &a.Section, &a.Title, &a.Content, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan about row: %w", err)
		}
		sections = append(sections, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing about content: %w", err)
	}

	return sections, nil
}

// Upsert writes a section by its unique name: update if present, insert if
// absent.
func (s *AboutStore) Upsert(ctx context.Context, req models.AboutSectionRequest) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO about_content (section, title, content)
		VALUES (?, ?, ?)
		ON CONFLICT(section) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			updated_at = CURRENT_TIMESTAMP;
	`, req.Section, req.Title, req.Content)
	if err != nil {
		return fmt.Errorf("failed to upsert about section: %w", err)
	}
	return nil
}
