package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/client/auth"
	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/internal/client/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newSchedulerMock() *SchedulerMock {
	return &SchedulerMock{
		StartFunc: func(cfg livesync.Config) error { return nil },
		StopFunc:  func() {},
		WaitFunc:  func(ctx context.Context) error { return nil },
		StateFunc: func() livesync.State { return livesync.StateIdle },
	}
}

func metadataWith(endpoint string, err error) *storage.MetadataStorageMock {
	return &storage.MetadataStorageMock{
		GetPortalURLFunc: func(ctx context.Context) (string, error) { return endpoint, err },
	}
}

func authWith(ok bool, err error) *auth.ServiceMock {
	return &auth.ServiceMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) { return ok, err },
	}
}

func enabledConfig() livesync.Config {
	cfg := livesync.DefaultConfig()
	cfg.Enabled = true
	return cfg
}

func TestRunner_Start(t *testing.T) {
	tests := []struct {
		name        string
		cfg         livesync.Config
		endpoint    string
		endpointErr error
		loggedIn    bool
		authErr     error
		startErr    error
		wantStarted bool
		wantErr     bool
	}{
		{
			name:        "all conditions met",
			cfg:         enabledConfig(),
			endpoint:    "http://10.0.0.5:3000",
			loggedIn:    true,
			wantStarted: true,
		},
		{
			name:     "disabled in config",
			cfg:      livesync.DefaultConfig(),
			endpoint: "http://10.0.0.5:3000",
			loggedIn: true,
		},
		{
			name:     "endpoint missing",
			cfg:      enabledConfig(),
			loggedIn: true,
		},
		{
			name:     "placeholder endpoint",
			cfg:      enabledConfig(),
			endpoint: livesync.PlaceholderEndpoint,
			loggedIn: true,
		},
		{
			name:     "no session",
			cfg:      enabledConfig(),
			endpoint: "http://10.0.0.5:3000",
		},
		{
			name:        "metadata error",
			cfg:         enabledConfig(),
			endpointErr: storage.ErrStorageClosed,
			wantErr:     true,
		},
		{
			name:     "session check error",
			cfg:      enabledConfig(),
			endpoint: "http://10.0.0.5:3000",
			authErr:  storage.ErrStorageClosed,
			wantErr:  true,
		},
		{
			name:     "scheduler rejects config",
			cfg:      enabledConfig(),
			endpoint: "http://10.0.0.5:3000",
			loggedIn: true,
			startErr: livesync.ErrInvalidConfig,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := newSchedulerMock()
			sched.StartFunc = func(cfg livesync.Config) error { return tt.startErr }

			r := NewRunner(sched, metadataWith(tt.endpoint, tt.endpointErr), authWith(tt.loggedIn, tt.authErr), tt.cfg, testLogger())
			started, err := r.Start(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStarted, started)

			if tt.wantStarted || tt.startErr != nil {
				require.Len(t, sched.StartCalls(), 1)
				assert.Equal(t, tt.cfg, sched.StartCalls()[0].Cfg)
			} else {
				assert.Empty(t, sched.StartCalls())
			}
		})
	}
}

func TestRunner_Stop(t *testing.T) {
	sched := newSchedulerMock()
	r := NewRunner(sched, metadataWith("", nil), authWith(false, nil), enabledConfig(), testLogger())

	require.NoError(t, r.Stop(context.Background()))
	assert.Len(t, sched.StopCalls(), 1)
	assert.Len(t, sched.WaitCalls(), 1)
}

func TestRunner_StopTimeout(t *testing.T) {
	sched := newSchedulerMock()
	sched.WaitFunc = func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	r := NewRunner(sched, metadataWith("", nil), authWith(false, nil), enabledConfig(), testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := r.Stop(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRunner_Run(t *testing.T) {
	sched := newSchedulerMock()
	r := NewRunner(sched, metadataWith("http://10.0.0.5:3000", nil), authWith(true, nil), enabledConfig(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), time.Second)
		})
	}()

	require.Eventually(t, func() bool { return len(sched.StartCalls()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Len(t, sched.StopCalls(), 1)
}

func TestRunner_State(t *testing.T) {
	sched := newSchedulerMock()
	r := NewRunner(sched, metadataWith("", nil), authWith(false, nil), enabledConfig(), nil)
	assert.Equal(t, livesync.StateIdle, r.State())
	assert.Len(t, sched.StateCalls(), 1)
}
