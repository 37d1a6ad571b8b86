package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/fieldsync/internal/crdt"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/internal/validation"
)

// ListUsers returns all users
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	return listUsers(ctx, s.db)
}

// GetUser retrieves a user by id
// Returns ErrUserNotFound if user doesn't exist
func (s *Storage) GetUser(ctx context.Context, id string) (models.User, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM users WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, storage.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	var u models.User
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		return models.User{}, fmt.Errorf("failed to decode user %s: %w", id, err)
	}
	return u, nil
}

// MergeUsers сливает пользователей с устройства с сохраненными.
// Невалидные записи пропускаются и учитываются в Stats.Skipped.
func (s *Storage) MergeUsers(ctx context.Context, users []models.User) (crdt.Stats, error) {
	incoming := make([]models.User, 0, len(users))
	skipped := 0
	for _, u := range users {
		if err := validation.ValidateUser(u); err != nil {
			s.logger.Warn("Skipping invalid user", "user_id", u.ID, "error", err)
			skipped++
			continue
		}
		incoming = append(incoming, u)
	}

	var stats crdt.Stats
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := listUsers(ctx, tx)
		if err != nil {
			return err
		}

		var merged []models.User
		merged, stats = crdt.Merge(existing, incoming, s.logger)
		for _, u := range changed(merged, incoming) {
			if err := upsertUser(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return crdt.Stats{}, err
	}

	stats.Skipped += skipped
	return stats, nil
}

// ListTickets returns all tickets ordered by start time
func (s *Storage) ListTickets(ctx context.Context) ([]models.ServiceTicket, error) {
	return listTickets(ctx, s.db)
}

// MergeTickets сливает тикеты с устройства с сохраненными
func (s *Storage) MergeTickets(ctx context.Context, tickets []models.ServiceTicket) (crdt.Stats, error) {
	incoming := make([]models.ServiceTicket, 0, len(tickets))
	skipped := 0
	for _, t := range tickets {
		if err := validation.ValidateTicket(t); err != nil {
			s.logger.Warn("Skipping invalid ticket", "ticket_id", t.ID, "error", err)
			skipped++
			continue
		}
		incoming = append(incoming, t)
	}

	var stats crdt.Stats
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := listTickets(ctx, tx)
		if err != nil {
			return err
		}

		var merged []models.ServiceTicket
		merged, stats = crdt.Merge(existing, incoming, s.logger)
		for _, t := range changed(merged, incoming) {
			if err := upsertTicket(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return crdt.Stats{}, err
	}

	stats.Skipped += skipped
	return stats, nil
}

// changed возвращает записи результата слияния, затронутые входящими
func changed[T crdt.Record](merged, incoming []T) []T {
	ids := make(map[string]struct{}, len(incoming))
	for _, r := range incoming {
		ids[r.RecordID()] = struct{}{}
	}
	var out []T
	for _, r := range merged {
		if _, ok := ids[r.RecordID()]; ok {
			out = append(out, r)
		}
	}
	return out
}

func listUsers(ctx context.Context, q queryer) ([]models.User, error) {
	rows, err := q.QueryContext(ctx, `SELECT payload FROM users ORDER BY username COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return scanPayloads[models.User](rows)
}

func listTickets(ctx context.Context, q queryer) ([]models.ServiceTicket, error) {
	rows, err := q.QueryContext(ctx, `SELECT payload FROM tickets ORDER BY start_time, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	return scanPayloads[models.ServiceTicket](rows)
}

func scanPayloads[T any](rows *sql.Rows) ([]T, error) {
	defer func() {
		_ = rows.Close()
	}()

	items := []T{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var item T
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return items, nil
}

func upsertUser(ctx context.Context, q queryer, u models.User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user %s: %w", u.ID, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO users (id, username, role, active, updated_at, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			role = excluded.role,
			active = excluded.active,
			updated_at = excluded.updated_at,
			payload = excluded.payload
	`, u.ID, u.Username, string(u.Role), boolToInt(u.Active), toNanos(u.ModifiedAt()), string(payload))
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", u.ID, err)
	}
	return nil
}

func upsertTicket(ctx context.Context, q queryer, t models.ServiceTicket) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode ticket %s: %w", t.ID, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO tickets (id, technician_id, device_code, status, start_time, updated_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			technician_id = excluded.technician_id,
			device_code = excluded.device_code,
			status = excluded.status,
			start_time = excluded.start_time,
			updated_at = excluded.updated_at,
			payload = excluded.payload
	`, t.ID, t.TechnicianID, t.DeviceCode, string(t.Status), toNanos(t.StartTime), toNanos(t.ModifiedAt()), string(payload))
	if err != nil {
		return fmt.Errorf("failed to upsert ticket %s: %w", t.ID, err)
	}
	return nil
}
