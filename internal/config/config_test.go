package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/client/livesync"
)

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "fieldsync.db", cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.Portal.Timeout)
	assert.True(t, cfg.LiveSync.Enabled)
	assert.Equal(t, 5*time.Second, cfg.LiveSync.Interval)
	assert.True(t, cfg.LiveSync.AutoReconnect)
	assert.Equal(t, 3, cfg.LiveSync.MaxFailures)
	assert.Empty(t, cfg.Metrics.Addr)

	sched := cfg.LiveSync.Scheduler()
	assert.Equal(t, livesync.DefaultRequestTimeout, sched.RequestTimeout)
	assert.NoError(t, sched.Validate())
}

func TestLoadClient_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldsync.yaml")
	content := `
portal:
  url: http://192.168.1.20:3000
live_sync:
  interval: 30s
  auto_reconnect: false
  max_failures: 5
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// окружение важнее файла
	t.Setenv("FIELDSYNC_LIVE_SYNC_INTERVAL", "10s")
	t.Setenv("FIELDSYNC_DB_PATH", "/var/lib/fieldsync/device.db")

	cfg, err := LoadClient(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://192.168.1.20:3000", cfg.Portal.URL)
	assert.Equal(t, 10*time.Second, cfg.LiveSync.Interval)
	assert.False(t, cfg.LiveSync.AutoReconnect)
	assert.Equal(t, 5, cfg.LiveSync.MaxFailures)
	assert.Equal(t, "/var/lib/fieldsync/device.db", cfg.DB.Path)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadClient_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "negative interval", env: map[string]string{"FIELDSYNC_LIVE_SYNC_INTERVAL": "-5s"}},
		{name: "bad log level", env: map[string]string{"FIELDSYNC_LOG_LEVEL": "verbose"}},
		{name: "bad log format", env: map[string]string{"FIELDSYNC_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadClient(NewViper(), "")
			require.Error(t, err)
		})
	}
}

func TestLoadClient_MissingFile(t *testing.T) {
	_, err := LoadClient(NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadServer(t *testing.T) {
	t.Setenv("FIELDSYNC_AUTH_JWT_SECRET", "s3cr3t")
	t.Setenv("FIELDSYNC_RATE_LIMIT_REQUESTS", "10")

	cfg, err := LoadServer(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "backups", cfg.Backup.Dir)
	assert.Equal(t, "s3cr3t", cfg.Auth.JWTSecret)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLogLevel)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("visible", "ticket_id", "t1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "t1", record["ticket_id"])

	_, err = NewLogger(LogConfig{Format: "xml"}, &buf)
	assert.ErrorIs(t, err, ErrInvalidLogFormat)
}
