package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/fieldsync/internal/server/storage"
)

// SaveToken stores a newly issued device token
func (s *Storage) SaveToken(ctx context.Context, token storage.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (id, device, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.ID,
		token.Device,
		toNanos(token.CreatedAt),
		toNanos(token.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save device token: %w", err)
	}

	return nil
}

// GetToken retrieves device token by id
func (s *Storage) GetToken(ctx context.Context, id string) (storage.DeviceToken, error) {
	query := `
		SELECT id, device, created_at, expires_at, revoked_at
		FROM device_tokens
		WHERE id = ?
	`

	token, err := scanToken(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DeviceToken{}, storage.ErrTokenNotFound
		}
		return storage.DeviceToken{}, fmt.Errorf("failed to get device token: %w", err)
	}

	return token, nil
}

// ListTokens returns all device tokens, newest first
func (s *Storage) ListTokens(ctx context.Context) ([]storage.DeviceToken, error) {
	query := `
		SELECT id, device, created_at, expires_at, revoked_at
		FROM device_tokens
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query device tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tokens []storage.DeviceToken

	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tokens, nil
}

// RevokeToken marks device token as revoked
func (s *Storage) RevokeToken(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE device_tokens SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, toNanos(at), id)
	if err != nil {
		return fmt.Errorf("failed to revoke device token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// Повторный отзыв не ошибка, если токен существует
		if _, err := s.GetToken(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// DeleteExpiredTokens removes tokens that expired before now
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	query := `DELETE FROM device_tokens WHERE expires_at < ?`

	result, err := s.db.ExecContext(ctx, query, toNanos(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

func scanToken(row rowScanner) (storage.DeviceToken, error) {
	var token storage.DeviceToken
	var createdAt, expiresAt int64
	var revokedAt sql.NullInt64

	if err := row.Scan(&token.ID, &token.Device, &createdAt, &expiresAt, &revokedAt); err != nil {
		return storage.DeviceToken{}, err
	}

	token.CreatedAt = fromNanos(createdAt)
	token.ExpiresAt = fromNanos(expiresAt)
	if revokedAt.Valid {
		at := fromNanos(revokedAt.Int64)
		token.RevokedAt = &at
	}

	return token, nil
}
