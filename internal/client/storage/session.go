package storage

import (
	"context"
	"time"

	"github.com/iudanet/fieldsync/internal/models"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the local user session
type SessionStorage interface {
	// SaveSession stores the current session, replacing the previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the current session
	// Returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the current session (logout)
	DeleteSession(ctx context.Context) error
}

// Session represents the user logged in on this device
type Session struct {
	CreatedAt time.Time   `json:"created_at"`
	UserID    string      `json:"user_id"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
}
