package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/termfolio/internal/content"
)

// SaveMessage stores a contact message and returns its ID. A zero
// CreatedAt is stamped with the current time.
func (s *Store) SaveMessage(m content.Message) (int64, error) {
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO messages (name, email, body, created_at) VALUES (?, ?, ?, ?)`,
		m.Name, m.Email, m.Body, created.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save message: %w", err)
	}
	return res.LastInsertId()
}

// ListMessages returns messages newest first. A non-positive limit returns
// all of them.
func (s *Store) ListMessages(limit int) ([]content.Message, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(
		`SELECT id, name, email, body, created_at
		 FROM messages
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list messages: %w", err)
	}
	defer rows.Close()

	var out []content.Message
	for rows.Next() {
		var m content.Message
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan message: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteMessage removes one message.
func (s *Store) DeleteMessage(id int64) error {
	return s.deleteRow("messages", id)
}
