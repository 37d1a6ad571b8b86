package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
)

// SaveBackup stores backup metadata
func (s *Storage) SaveBackup(ctx context.Context, b models.Backup) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO backups (id, filename, checksum, size, users, tickets, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.Filename, b.Checksum, b.Size, b.Users, b.Tickets, toNanos(b.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save backup: %w", err)
	}
	return nil
}

// GetBackup retrieves backup metadata by filename
// Returns ErrBackupNotFound if backup doesn't exist
func (s *Storage) GetBackup(ctx context.Context, filename string) (models.Backup, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, filename, checksum, size, users, tickets, created_at
		FROM backups
		WHERE filename = ?
	`, filename)

	b, err := scanBackup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Backup{}, storage.ErrBackupNotFound
	}
	if err != nil {
		return models.Backup{}, fmt.Errorf("failed to get backup: %w", err)
	}
	return b, nil
}

// ListBackups returns backups, newest first
func (s *Storage) ListBackups(ctx context.Context) ([]models.Backup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, checksum, size, users, tickets, created_at
		FROM backups
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query backups: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	backups := []models.Backup{}
	for rows.Next() {
		b, err := scanBackup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan backup: %w", err)
		}
		backups = append(backups, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return backups, nil
}

// Snapshot читает пользователей и тикеты в одной транзакции
func (s *Storage) Snapshot(ctx context.Context) (*storage.Snapshot, error) {
	snap := &storage.Snapshot{}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if snap.Users, err = listUsers(ctx, tx); err != nil {
			return err
		}
		snap.Tickets, err = listTickets(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore заменяет пользователей и тикеты содержимым снимка.
// Шаблоны, журнал рабочего дня и токены не затрагиваются.
func (s *Storage) Restore(ctx context.Context, snap *storage.Snapshot) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tickets`); err != nil {
			return fmt.Errorf("failed to clear tickets: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		for _, u := range snap.Users {
			if err := upsertUser(ctx, tx, u); err != nil {
				return err
			}
		}
		for _, t := range snap.Tickets {
			if err := upsertTicket(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBackup(row rowScanner) (models.Backup, error) {
	var b models.Backup
	var createdAt int64
	err := row.Scan(&b.ID, &b.Filename, &b.Checksum, &b.Size, &b.Users, &b.Tickets, &createdAt)
	if err != nil {
		return models.Backup{}, err
	}
	b.CreatedAt = fromNanos(createdAt)
	return b, nil
}
