package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/validation"
)

// mockSessionStorage implements storage.SessionStorage for testing
type mockSessionStorage struct {
	data      *storage.Session
	saveErr   error
	getErr    error
	deleteErr error
}

func (m *mockSessionStorage) SaveSession(ctx context.Context, session *storage.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	// Сохраняем копию данных
	cp := *session
	m.data = &cp
	return nil
}

func (m *mockSessionStorage) GetSession(ctx context.Context) (*storage.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.data == nil {
		return nil, storage.ErrSessionNotFound
	}
	cp := *m.data
	return &cp, nil
}

func (m *mockSessionStorage) DeleteSession(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.data = nil
	return nil
}

type staticUsers []models.User

func (u staticUsers) All() []models.User { return u }

var testUsers = staticUsers{
	{ID: "u-admin", Username: "admin", DisplayName: "Admin", Role: models.RoleSuperUser, Active: true},
	{ID: "u-tech", Username: "petrov", DisplayName: "Petrov", Role: models.RoleTechnician, Active: true},
	{ID: "u-gone", Username: "sidorov", DisplayName: "Sidorov", Role: models.RoleTechnician, Active: false},
}

func newTestService(users UserSource, sessions storage.SessionStorage) (*SessionService, *clockwork.FakeClock) {
	fc := clockwork.NewFakeClockAt(time.Date(2025, 5, 12, 8, 30, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(users, sessions, fc, logger), fc
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
		wantRole models.Role
	}{
		{name: "super user", username: "admin", wantRole: models.RoleSuperUser},
		{name: "technician", username: "petrov", wantRole: models.RoleTechnician},
		{name: "case insensitive", username: "Petrov", wantRole: models.RoleTechnician},
		{name: "unknown user", username: "ivanov", wantErr: ErrUserNotFound},
		{name: "inactive user", username: "sidorov", wantErr: ErrUserInactive},
		{name: "empty username", username: "  ", wantErr: validation.ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &mockSessionStorage{}
			svc, fc := newTestService(testUsers, sessions)

			session, err := svc.Login(context.Background(), tt.username)
			if tt.wantRole == "" {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sessions.data, "no session must be stored on failure")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, session.Role)
			assert.Equal(t, fc.Now(), session.CreatedAt)
			require.NotNil(t, sessions.data)
			assert.Equal(t, session.UserID, sessions.data.UserID)
		})
	}
}

func TestLogin_SaveError(t *testing.T) {
	sessions := &mockSessionStorage{saveErr: errors.New("disk full")}
	svc, _ := newTestService(testUsers, sessions)

	_, err := svc.Login(context.Background(), "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")
}

func TestLogout(t *testing.T) {
	sessions := &mockSessionStorage{}
	svc, _ := newTestService(testUsers, sessions)
	ctx := context.Background()

	_, err := svc.Login(ctx, "petrov")
	require.NoError(t, err)

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Logout(ctx))

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestLogout_DeleteError(t *testing.T) {
	sessions := &mockSessionStorage{deleteErr: errors.New("db closed")}
	svc, _ := newTestService(testUsers, sessions)

	err := svc.Logout(context.Background())
	require.Error(t, err)
}

func TestIsAuthenticated_StorageError(t *testing.T) {
	sessions := &mockSessionStorage{getErr: storage.ErrStorageClosed}
	svc, _ := newTestService(testUsers, sessions)

	ok, err := svc.IsAuthenticated(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.False(t, ok)
}

func TestCanPushUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		svc, _ := newTestService(testUsers, &mockSessionStorage{})
		assert.False(t, svc.CanPushUsers(ctx))
	})

	t.Run("super user", func(t *testing.T) {
		svc, _ := newTestService(testUsers, &mockSessionStorage{})
		_, err := svc.Login(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, svc.CanPushUsers(ctx))
	})

	t.Run("technician", func(t *testing.T) {
		svc, _ := newTestService(testUsers, &mockSessionStorage{})
		_, err := svc.Login(ctx, "petrov")
		require.NoError(t, err)
		assert.False(t, svc.CanPushUsers(ctx))
	})

	t.Run("role downgraded by sync", func(t *testing.T) {
		sessions := &mockSessionStorage{data: &storage.Session{UserID: "u-admin", Username: "admin", Role: models.RoleSuperUser}}
		downgraded := staticUsers{{ID: "u-admin", Username: "admin", Role: models.RoleTechnician, Active: true}}
		svc, _ := newTestService(downgraded, sessions)
		assert.False(t, svc.CanPushUsers(ctx))
	})

	t.Run("deactivated by sync", func(t *testing.T) {
		sessions := &mockSessionStorage{data: &storage.Session{UserID: "u-admin", Username: "admin", Role: models.RoleSuperUser}}
		deactivated := staticUsers{{ID: "u-admin", Username: "admin", Role: models.RoleSuperUser, Active: false}}
		svc, _ := newTestService(deactivated, sessions)
		assert.False(t, svc.CanPushUsers(ctx))
	})

	t.Run("user missing from collection keeps session role", func(t *testing.T) {
		sessions := &mockSessionStorage{data: &storage.Session{UserID: "u-admin", Username: "admin", Role: models.RoleSuperUser}}
		svc, _ := newTestService(staticUsers{}, sessions)
		assert.True(t, svc.CanPushUsers(ctx))
	})
}
