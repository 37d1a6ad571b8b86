package data

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

	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/validation"
)

// memoryStore - простой hand-written persister, хранит последнюю сохраненную коллекцию
type memoryStore[T any] struct {
	items      []T
	replaceErr error
	replaces   int
}

func (m *memoryStore[T]) Load(ctx context.Context) ([]T, error) { return m.items, nil }

func (m *memoryStore[T]) Replace(ctx context.Context, items []T) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaces++
	m.items = items
	return nil
}

type fixture struct {
	svc         *Service
	clock       *clockwork.FakeClock
	userStore   *memoryStore[models.User]
	ticketStore *memoryStore[models.ServiceTicket]
	tech        models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	tech := models.User{ID: "tech-1", Username: "petrov", DisplayName: "Petrov P.", Role: models.RoleTechnician, Active: true}
	userStore := &memoryStore[models.User]{items: []models.User{
		tech,
		{ID: "tech-2", Username: "sidorov", DisplayName: "Sidorov S.", Role: models.RoleTechnician, Active: false},
	}}
	ticketStore := &memoryStore[models.ServiceTicket]{}

	users := state.New[models.User](userStore, nil)
	tickets := state.New[models.ServiceTicket](ticketStore, models.ServiceTicket.Clone)
	require.NoError(t, users.Load(ctx))
	require.NoError(t, tickets.Load(ctx))

	fc := clockwork.NewFakeClockAt(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	return &fixture{
		svc:         NewService(users, tickets, fc, logger),
		clock:       fc,
		userStore:   userStore,
		ticketStore: ticketStore,
		tech:        tech,
	}
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.svc.CreateUser(ctx, NewUser{Username: "ivanov", DisplayName: " Ivanov I. ", Role: models.RoleSuperUser})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ivanov I.", user.DisplayName)
	assert.True(t, user.Active)
	require.NotNil(t, user.UpdatedAt)
	assert.Equal(t, f.clock.Now(), user.CreatedAt)

	assert.Len(t, f.svc.ListUsers(), 3)
	assert.Len(t, f.userStore.items, 3, "user must be persisted")
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     NewUser
		wantErr error
	}{
		{
			name:    "duplicate username ignores case",
			req:     NewUser{Username: "PETROV", DisplayName: "Another", Role: models.RoleTechnician},
			wantErr: ErrUsernameTaken,
		},
		{
			name:    "empty username",
			req:     NewUser{DisplayName: "Nobody", Role: models.RoleTechnician},
			wantErr: validation.ErrEmptyUsername,
		},
		{
			name:    "unknown role",
			req:     NewUser{Username: "manager", DisplayName: "Manager", Role: "manager"},
			wantErr: validation.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.CreateUser(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, f.svc.ListUsers(), 2)
			assert.Zero(t, f.userStore.replaces)
		})
	}
}

func TestSetUserActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.svc.SetUserActive(ctx, "tech-2", true)
	require.NoError(t, err)
	assert.True(t, user.Active)
	require.NotNil(t, user.UpdatedAt)

	first := *user.UpdatedAt
	user, err = f.svc.SetUserActive(ctx, "tech-2", false)
	require.NoError(t, err)
	assert.False(t, user.Active)
	assert.True(t, user.UpdatedAt.After(first), "each change must get a newer stamp")

	_, err = f.svc.SetUserActive(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTicketLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.StartTicket(ctx, NewTicket{
		TechnicianID:   f.tech.ID,
		DeviceCode:     "ATM-0042",
		DeviceLocation: "Lobby",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TicketInProgress, ticket.Status)
	assert.Equal(t, "Petrov P.", ticket.TechnicianName)
	assert.Nil(t, ticket.EndTime)
	require.NotNil(t, ticket.UpdatedAt)
	prev := *ticket.UpdatedAt

	ticket, err = f.svc.AddOperation(ctx, ticket.ID, "Cleaning", "card reader")
	require.NoError(t, err)
	require.Len(t, ticket.Operations, 1)
	assert.Equal(t, "Cleaning", ticket.Operations[0].Name)
	assert.True(t, ticket.UpdatedAt.After(prev))
	prev = *ticket.UpdatedAt

	ticket, err = f.svc.AddSparePart(ctx, ticket.ID, "Belt", 2)
	require.NoError(t, err)
	require.Len(t, ticket.SpareParts, 1)
	assert.Equal(t, 2, ticket.SpareParts[0].Quantity)
	assert.True(t, ticket.UpdatedAt.After(prev))

	ticket, err = f.svc.SetNotes(ctx, ticket.ID, "replaced belt")
	require.NoError(t, err)
	assert.Equal(t, "replaced belt", ticket.Notes)

	f.clock.Advance(45 * time.Minute)
	ticket, err = f.svc.CompleteTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketCompleted, ticket.Status)
	require.NotNil(t, ticket.EndTime)
	assert.Equal(t, f.clock.Now(), *ticket.EndTime)
	assert.Empty(t, validation.CheckTicket(ticket))

	got, err := f.svc.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket, got)
	assert.Len(t, f.ticketStore.items, 1)
}

func TestCompletedTicketIsImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.StartTicket(ctx, NewTicket{TechnicianID: f.tech.ID, DeviceCode: "POS-7"})
	require.NoError(t, err)
	ticket, err = f.svc.CompleteTicket(ctx, ticket.ID)
	require.NoError(t, err)

	_, err = f.svc.CompleteTicket(ctx, ticket.ID)
	assert.ErrorIs(t, err, ErrTicketCompleted)
	_, err = f.svc.AddOperation(ctx, ticket.ID, "Late fix", "")
	assert.ErrorIs(t, err, ErrTicketCompleted)
	_, err = f.svc.AddSparePart(ctx, ticket.ID, "Fuse", 1)
	assert.ErrorIs(t, err, ErrTicketCompleted)

	got, err := f.svc.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}

func TestTicketValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartTicket(ctx, NewTicket{TechnicianID: f.tech.ID, DeviceCode: "  "})
	assert.ErrorIs(t, err, validation.ErrEmptyDeviceCode)

	_, err = f.svc.StartTicket(ctx, NewTicket{TechnicianID: "tech-2", DeviceCode: "ATM-1"})
	assert.ErrorIs(t, err, ErrTechnicianInactive)

	_, err = f.svc.StartTicket(ctx, NewTicket{TechnicianID: "ghost", DeviceCode: "ATM-1"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	ticket, err := f.svc.StartTicket(ctx, NewTicket{TechnicianID: f.tech.ID, DeviceCode: "ATM-1"})
	require.NoError(t, err)

	_, err = f.svc.AddSparePart(ctx, ticket.ID, "Belt", 0)
	assert.ErrorIs(t, err, validation.ErrInvalidQuantity)
	_, err = f.svc.AddOperation(ctx, ticket.ID, " ", "")
	assert.ErrorIs(t, err, validation.ErrEmptyOperationName)

	got, err := f.svc.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Operations, "rejected change must not leak into the collection")
	assert.Empty(t, got.SpareParts)

	_, err = f.svc.GetTicket("missing")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestPersistFailureKeepsCollection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.StartTicket(ctx, NewTicket{TechnicianID: f.tech.ID, DeviceCode: "ATM-9"})
	require.NoError(t, err)

	f.ticketStore.replaceErr = errors.New("disk full")
	_, err = f.svc.CompleteTicket(ctx, ticket.ID)
	require.Error(t, err)

	got, err := f.svc.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketInProgress, got.Status)
}
