package livesync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/pkg/api"
)

const testEndpoint = "http://portal.test:3000"

var errOffline = errors.New("dial tcp: connection refused")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memoryHolders создает holders поверх моков хранилища, которые всегда успешно сохраняют
func memoryHolders(t *testing.T, users []models.User, tickets []models.ServiceTicket) (*state.Holder[models.User], *state.Holder[models.ServiceTicket]) {
	t.Helper()
	ctx := context.Background()

	uh := state.NewUserHolder(&storage.UserStorageMock{
		LoadUsersFunc:    func(ctx context.Context) ([]models.User, error) { return users, nil },
		ReplaceUsersFunc: func(ctx context.Context, users []models.User) error { return nil },
	})
	th := state.NewTicketHolder(&storage.TicketStorageMock{
		LoadTicketsFunc:    func(ctx context.Context) ([]models.ServiceTicket, error) { return tickets, nil },
		ReplaceTicketsFunc: func(ctx context.Context, tickets []models.ServiceTicket) error { return nil },
	})
	require.NoError(t, uh.Load(ctx))
	require.NoError(t, th.Load(ctx))
	return uh, th
}

func metadataMock(endpoint string) *storage.MetadataStorageMock {
	var mu sync.Mutex
	var last time.Time
	return &storage.MetadataStorageMock{
		GetPortalURLFunc: func(ctx context.Context) (string, error) { return endpoint, nil },
		SavePortalURLFunc: func(ctx context.Context, url string) error {
			return nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, t time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			last = t
			return nil
		},
		GetLastSyncTimeFunc: func(ctx context.Context) (time.Time, error) {
			mu.Lock()
			defer mu.Unlock()
			return last, nil
		},
	}
}

// healthyAPI мок портала, который отвечает успешно на все вызовы цикла
func healthyAPI(remoteUsers []models.User, remoteTickets []models.ServiceTicket) *clientapi.ClientAPIMock {
	return &clientapi.ClientAPIMock{
		SetBaseURLFunc: func(baseURL string) {},
		HealthFunc: func(ctx context.Context) (*api.HealthResponse, error) {
			return &api.HealthResponse{Status: "ok"}, nil
		},
		PushUsersFunc: func(ctx context.Context, users []models.User) (*api.WriteResponse, error) {
			return &api.WriteResponse{Success: true, Count: len(users)}, nil
		},
		PushTicketsFunc: func(ctx context.Context, tickets []models.ServiceTicket) (*api.WriteResponse, error) {
			return &api.WriteResponse{Success: true, Count: len(tickets)}, nil
		},
		FetchAllDataFunc: func(ctx context.Context) (*clientapi.AllData, error) {
			return &clientapi.AllData{Users: remoteUsers, Tickets: remoteTickets}, nil
		},
	}
}

// offlineAPI мок недоступного портала
func offlineAPI() *clientapi.ClientAPIMock {
	return &clientapi.ClientAPIMock{
		SetBaseURLFunc: func(baseURL string) {},
		HealthFunc: func(ctx context.Context) (*api.HealthResponse, error) {
			return nil, errOffline
		},
	}
}

// waitTimerArmed ждет, пока цикл таймера завершит текущий цикл и взведет таймер
func waitTimerArmed(t *testing.T, fc *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 1))
}

func stopAndWait(t *testing.T, s *Scheduler) {
	t.Helper()
	s.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Wait(ctx))
}

func at(ts time.Time) *time.Time { return &ts }
