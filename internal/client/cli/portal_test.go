package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/pkg/api"
)

func TestNormalizePortalURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://192.168.1.20:3000", want: "http://192.168.1.20:3000"},
		{in: " https://portal.example.com/ ", want: "https://portal.example.com"},
		{in: "ftp://portal", wantErr: true},
		{in: "portal:3000", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizePortalURL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPortal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCli_runPortalSetURL(t *testing.T) {
	env := newTestEnv(t, "")
	env.endpoint = ""

	require.NoError(t, env.cli.runPortalSetURL(context.Background(), "http://192.168.1.20:3000/"))

	require.Len(t, env.metadata.SavePortalURLCalls(), 1)
	assert.Equal(t, "http://192.168.1.20:3000", env.metadata.SavePortalURLCalls()[0].Url)
	require.Len(t, env.api.SetBaseURLCalls(), 1)
	assert.Equal(t, "http://192.168.1.20:3000", env.api.SetBaseURLCalls()[0].BaseURL)
	assert.Contains(t, env.output(), "Portal URL set")
}

func TestCli_runPortalSetURL_RejectsPlaceholder(t *testing.T) {
	env := newTestEnv(t, "")

	err := env.cli.runPortalSetURL(context.Background(), livesync.PlaceholderEndpoint)
	require.ErrorIs(t, err, ErrInvalidPortal)
	assert.Empty(t, env.metadata.SavePortalURLCalls())
}

func TestCli_runPortalShow(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, env.cli.runPortalShow(context.Background()))
	assert.Contains(t, env.output(), testPortal)

	env = newTestEnv(t, "")
	env.endpoint = ""
	require.NoError(t, env.cli.runPortalShow(context.Background()))
	assert.Contains(t, env.output(), "not configured")
}

func TestCli_runTestConnection(t *testing.T) {
	env := newTestEnv(t, "")
	env.api.HealthFunc = func(ctx context.Context) (*api.HealthResponse, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "health check must be bounded")
		return &api.HealthResponse{Status: "ok", Message: "FieldSync portal"}, nil
	}

	require.NoError(t, env.cli.runTestConnection(context.Background()))
	assert.Contains(t, env.output(), "Portal is reachable (status: ok")
	assert.Contains(t, env.output(), "FieldSync portal")
	require.Len(t, env.api.SetBaseURLCalls(), 1)
	assert.Equal(t, testPortal, env.api.SetBaseURLCalls()[0].BaseURL)
}

func TestCli_runTestConnection_Failures(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.endpoint = ""
		err := env.cli.runTestConnection(context.Background())
		require.ErrorIs(t, err, ErrPortalNotReady)
		assert.Empty(t, env.api.HealthCalls())
	})

	t.Run("unreachable", func(t *testing.T) {
		env := newTestEnv(t, "")
		refused := errors.New("connection refused")
		env.api.HealthFunc = func(ctx context.Context) (*api.HealthResponse, error) { return nil, refused }
		err := env.cli.runTestConnection(context.Background())
		require.ErrorIs(t, err, refused)
		assert.Contains(t, err.Error(), "portal unreachable")
	})

	t.Run("timeout", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.api.HealthFunc = func(ctx context.Context) (*api.HealthResponse, error) {
			return nil, context.DeadlineExceeded
		}
		err := env.cli.runTestConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), connectionTimeout.String())
	})
}

func TestCli_runStatus(t *testing.T) {
	env := newTestEnv(t, "")
	env.loginAs(tech)
	last := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	env.syncer.StateFunc = func() livesync.State { return livesync.StateIdle }
	env.syncer.ConsecutiveFailuresFunc = func() int { return 2 }
	env.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (time.Time, error) { return last, nil }

	_, err := env.cli.dataService.StartTicket(context.Background(), newTicket(tech.ID, "ATM-1"))
	require.NoError(t, err)

	require.NoError(t, env.cli.runStatus(context.Background()))

	out := env.output()
	assert.Contains(t, out, "petrov (technician)")
	assert.Contains(t, out, testPortal)
	assert.Contains(t, out, livesync.StateIdle.String())
	assert.Contains(t, out, formatTime(last))
	assert.Contains(t, out, "2 consecutive")
	assert.Contains(t, out, "1 (1 in progress)")
	assert.Len(t, env.metadata.GetLastSyncTimeCalls(), 1, "persisted time is used when the scheduler has not synced yet")
}

func TestCli_runStatus_LoggedOut(t *testing.T) {
	env := newTestEnv(t, "")
	env.endpoint = ""

	require.NoError(t, env.cli.runStatus(context.Background()))
	out := env.output()
	assert.Contains(t, out, "not logged in")
	assert.Contains(t, out, "not configured")
	assert.Contains(t, out, "never")
	assert.NotContains(t, out, "consecutive")
}
