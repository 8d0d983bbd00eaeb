package store

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/api/models"
)

type SkillStore struct {
	db *sql.DB
}

// NewSkillStore creates a new SkillStore instance.
func NewSkillStore(db *sql.DB) *SkillStore {
	return &SkillStore{db: db}
}

func (s *SkillStore) List(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, proficiency, icon, description, created_at
		FROM skills
		ORDER BY category, proficiency DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency, &sk.Icon, &sk.Description, &sk.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing skills: %w", err)
	}

	return skills, nil
}

// Create inserts a new skill and returns its id.
func (s *SkillStore) Create(ctx context.Context, req models.SkillRequest) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO skills (name, category, proficiency, icon, description)
		VALUES (?, ?, ?, ?, ?);
	`, req.Name, req.Category, req.Proficiency, req.Icon, req.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to create skill: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new skill id: %w", err)
	}
	return int(id), nil
}

func (s *SkillStore) Update(ctx context.Context, id int, req models.SkillRequest) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE skills
		SET name = ?, category = ?, proficiency = ?, icon = ?, description = ?
		WHERE id = ?;
	`, req.Name, req.Category, req.Proficiency, req.Icon, req.Description, id)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
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

func (s *SkillStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
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
