package store

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/api/models"
)

type StatStore struct {
	db *sql.DB
}

// NewStatStore creates a new StatStore instance.
func NewStatStore(db *sql.DB) *StatStore {
	return &StatStore{db: db}
}

func (s *StatStore) List(ctx context.Context) ([]models.Stat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, key, value, label, color, display_order, created_at, updated_at
		FROM stats
		ORDER BY display_order ASC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	defer rows.Close()

	stats := []models.Stat{}
	for rows.Next() {
		var st models.Stat
		if err := rows.Scan(&st.ID, &st.Key, &st.Value, &st.Label, &st.Color, &st.DisplayOrder, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stat row: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing stats: %w", err)
	}

	return stats, nil
}

func (s *StatStore) Create(ctx context.Context, req models.StatRequest) (int, error) {
	color := req.Color
	if color == "" {
		color = "blue"
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO stats (key, value, label, color, display_order)
		VALUES (?, ?, ?, ?, ?);
	`, req.Key, req.Value, req.Label, color, req.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("failed to create stat: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new stat id: %w", err)
	}
	return int(id), nil
}

func (s *StatStore) Update(ctx context.Context, id int, req models.StatRequest) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE stats
		SET key = ?, value = ?, label = ?, color = ?, display_order = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?;
	`, req.Key, req.Value, req.Label, req.Color, req.DisplayOrder, id)
	if err != nil {
		return fmt.Errorf("failed to update stat: %w", err)
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

func (s *StatStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM stats WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stat: %w", err)
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
