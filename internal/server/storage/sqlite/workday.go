package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/fieldsync/internal/models"
)

// AppendWorkday adds an entry to the workday log
func (s *Storage) AppendWorkday(ctx context.Context, entry models.WorkdayEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workday_log (user_id, action, reason, at) VALUES (?, ?, ?, ?)`,
		entry.UserID, string(entry.Action), entry.Reason, toNanos(entry.At),
	)
	if err != nil {
		return fmt.Errorf("failed to append workday entry: %w", err)
	}
	return nil
}

// ListWorkday returns workday log of a user in chronological order
func (s *Storage) ListWorkday(ctx context.Context, userID string) ([]models.WorkdayEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, action, reason, at
		FROM workday_log
		WHERE user_id = ?
		ORDER BY at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workday log: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := []models.WorkdayEntry{}
	for rows.Next() {
		var e models.WorkdayEntry
		var action string
		var at int64
		if err := rows.Scan(&e.UserID, &action, &e.Reason, &at); err != nil {
			return nil, fmt.Errorf("failed to scan workday entry: %w", err)
		}
		e.Action = models.WorkdayAction(action)
		e.At = fromNanos(at)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}
