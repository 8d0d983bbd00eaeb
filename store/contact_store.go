package store

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/api/models"
)

type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore instance.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create saves a visitor-submitted message. New messages start unread.
func (s *ContactStore) Create(ctx context.Context, req models.ContactRequest) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES (?, ?, ?, ?);
	`, req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return 0, fmt.Errorf("failed to save contact message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new message id: %w", err)
	}
	return int(id), nil
}

func (s *ContactStore) List(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing contact messages: %w", err)
	}

	return messages, nil
}

// SetRead marks a message read or unread.
func (s *ContactStore) SetRead(ctx context.Context, id int, read bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE contact_messages SET read = ? WHERE id = ?;
	`, models.BoolFrom(read), id)
	if err != nil {
		return fmt.Errorf("failed to update contact message: %w", err)
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

func (s *ContactStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
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
