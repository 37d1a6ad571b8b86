package auth

import (
	"context"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for local session operations.
// Пользователи приходят с портала при синхронизации, пароли на устройстве не хранятся.
type Service interface {
	// Login открывает сессию для активного пользователя из локальной коллекции
	Login(ctx context.Context, username string) (*storage.Session, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// CurrentSession возвращает текущую сессию или storage.ErrSessionNotFound
	CurrentSession(ctx context.Context) (*storage.Session, error)

	// IsAuthenticated checks if a session exists
	IsAuthenticated(ctx context.Context) (bool, error)

	// CanPushUsers сообщает, может ли текущая сессия отправлять пользователей на портал
	CanPushUsers(ctx context.Context) bool
}

// UserSource отдает локальную коллекцию пользователей (state.Holder)
type UserSource interface {
	All() []models.User
}
