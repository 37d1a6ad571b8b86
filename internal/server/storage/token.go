package storage

import (
	"context"
	"time"
)

//go:generate moq -out token_mock.go . TokenStorage

// DeviceToken запись о выпущенном токене устройства. Сам JWT не хранится.
type DeviceToken struct {
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
	ID        string // jti
	Device    string
}

// Revoked сообщает, что токен отозван
func (t DeviceToken) Revoked() bool {
	return t.RevokedAt != nil
}

// TokenStorage defines interface for device token persistence
type TokenStorage interface {
	// SaveToken stores a newly issued token
	SaveToken(ctx context.Context, token DeviceToken) error

	// GetToken retrieves token by id
	// Returns ErrTokenNotFound if token doesn't exist
	GetToken(ctx context.Context, id string) (DeviceToken, error)

	// ListTokens returns all tokens, newest first
	ListTokens(ctx context.Context) ([]DeviceToken, error)

	// RevokeToken marks token as revoked
	// Returns ErrTokenNotFound if token doesn't exist
	RevokeToken(ctx context.Context, id string, at time.Time) error

	// DeleteExpiredTokens removes tokens expired before now
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
