package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/client/auth"
	"github.com/iudanet/fieldsync/internal/client/data"
	"github.com/iudanet/fieldsync/internal/client/iocli"
	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

const testPortal = "http://10.0.0.5:3000"

var (
	admin = models.User{ID: "11111111-aaaa", Username: "admin", DisplayName: "Admin", Role: models.RoleSuperUser, Active: true}
	tech  = models.User{ID: "22222222-bbbb", Username: "petrov", DisplayName: "Petrov P.", Role: models.RoleTechnician, Active: true}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testEnv Cli с моками внешних зависимостей и настоящим data.Service в памяти
type testEnv struct {
	cli       *Cli
	out       *bytes.Buffer
	auth      *auth.ServiceMock
	syncer    *SyncerMock
	api       *clientapi.ClientAPIMock
	metadata  *storage.MetadataStorageMock
	templates *storage.TemplateStorageMock
	data      *data.Service
	session   *storage.Session
	endpoint  string
}

func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()
	ctx := context.Background()

	env := &testEnv{out: &bytes.Buffer{}, endpoint: testPortal}

	users := state.New[models.User](state.PersisterFuncs[models.User]{
		LoadFunc:    func(ctx context.Context) ([]models.User, error) { return []models.User{admin, tech}, nil },
		ReplaceFunc: func(ctx context.Context, items []models.User) error { return nil },
	}, nil)
	tickets := state.New[models.ServiceTicket](state.PersisterFuncs[models.ServiceTicket]{
		LoadFunc:    func(ctx context.Context) ([]models.ServiceTicket, error) { return nil, nil },
		ReplaceFunc: func(ctx context.Context, items []models.ServiceTicket) error { return nil },
	}, models.ServiceTicket.Clone)
	require.NoError(t, users.Load(ctx))
	require.NoError(t, tickets.Load(ctx))

	fc := clockwork.NewFakeClockAt(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	env.data = data.NewService(users, tickets, fc, testLogger())

	env.auth = &auth.ServiceMock{
		CurrentSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			if env.session == nil {
				return nil, storage.ErrSessionNotFound
			}
			return env.session, nil
		},
	}
	env.syncer = &SyncerMock{
		StateFunc:               func() livesync.State { return livesync.StateStopped },
		LastSyncedFunc:          func() time.Time { return time.Time{} },
		ConsecutiveFailuresFunc: func() int { return 0 },
	}
	env.api = &clientapi.ClientAPIMock{
		SetBaseURLFunc: func(baseURL string) {},
	}
	env.metadata = &storage.MetadataStorageMock{
		GetPortalURLFunc:     func(ctx context.Context) (string, error) { return env.endpoint, nil },
		GetLastSyncTimeFunc:  func(ctx context.Context) (time.Time, error) { return time.Time{}, nil },
		SavePortalURLFunc:    func(ctx context.Context, url string) error { env.endpoint = url; return nil },
		SaveLastSyncTimeFunc: func(ctx context.Context, t time.Time) error { return nil },
	}
	env.templates = &storage.TemplateStorageMock{
		GetOperationTemplatesFunc: func(ctx context.Context) ([]models.OperationTemplate, error) { return nil, nil },
		GetSparePartTemplatesFunc: func(ctx context.Context) ([]models.SparePartTemplate, error) { return nil, nil },
	}

	env.cli = New(Deps{
		IO:        iocli.NewStream(strings.NewReader(input), env.out),
		Auth:      env.auth,
		Data:      env.data,
		Syncer:    env.syncer,
		API:       env.api,
		Metadata:  env.metadata,
		Templates: env.templates,
		Logger:    testLogger(),
	})
	return env
}

func (e *testEnv) loginAs(u models.User) {
	e.session = &storage.Session{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func (e *testEnv) output() string {
	return e.out.String()
}

func newTicket(techID, device string) data.NewTicket {
	return data.NewTicket{TechnicianID: techID, DeviceCode: device, DeviceLocation: "Lobby"}
}
