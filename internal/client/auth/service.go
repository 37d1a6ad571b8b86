package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/validation"
)

var (
	// ErrUserNotFound пользователя нет в локальной коллекции (нужна синхронизация)
	ErrUserNotFound = errors.New("user not found")
	// ErrUserInactive пользователь деактивирован администратором
	ErrUserInactive = errors.New("user is inactive")
)

// SessionService реализует Service поверх локальной коллекции пользователей и bbolt сессии
type SessionService struct {
	users    UserSource
	sessions storage.SessionStorage
	clock    clockwork.Clock
	logger   *slog.Logger
}

// Compile-time check that SessionService implements Service
var _ Service = (*SessionService)(nil)

// NewService создает новый сервис сессий
func NewService(users UserSource, sessions storage.SessionStorage, clock clockwork.Clock, logger *slog.Logger) *SessionService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		users:    users,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

// Login выполняет вход по username
func (s *SessionService) Login(ctx context.Context, username string) (*storage.Session, error) {
	username = strings.TrimSpace(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	user, ok := s.findByUsername(username)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: %s", ErrUserInactive, username)
	}

	session := &storage.Session{
		CreatedAt: s.clock.Now().UTC(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("User logged in", "username", user.Username, "role", user.Role)
	return session, nil
}

// Logout удаляет локальную сессию. Отсутствие сессии не считается ошибкой.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession возвращает текущую сессию
func (s *SessionService) CurrentSession(ctx context.Context) (*storage.Session, error) {
	return s.sessions.GetSession(ctx)
}

// IsAuthenticated проверяет наличие сессии
func (s *SessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.sessions.GetSession(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CanPushUsers разрешает отправку пользователей только super_user.
// Роль берется из актуальной коллекции: после синхронизации она могла измениться.
func (s *SessionService) CanPushUsers(ctx context.Context) bool {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return false
	}

	role := session.Role
	for _, u := range s.users.All() {
		if u.ID == session.UserID {
			if !u.Active {
				return false
			}
			role = u.Role
			break
		}
	}
	return role == models.RoleSuperUser
}

func (s *SessionService) findByUsername(username string) (models.User, bool) {
	for _, u := range s.users.All() {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}
