package app

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/config"
)

type testApp struct {
	v      *viper.Viper
	dbPath string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return &testApp{
		v:      config.NewViper(),
		dbPath: filepath.Join(t.TempDir(), "portal.db"),
	}
}

func (a *testApp) execute(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand(Options{
		Version:   "1.2.0",
		Commit:    "abc123",
		BuildDate: "2025-06-01",
		Viper:     a.v,
		Fs:        afero.NewMemMapFs(),
		LogOutput: io.Discard,
	})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", a.dbPath}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := newTestApp(t).execute(context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fieldsync-portal 1.2.0")
	assert.Contains(t, out, "commit: abc123")
}

func TestToken_DisabledWithoutSecret(t *testing.T) {
	_, err := newTestApp(t).execute(context.Background(), "token", "issue", "--device", "tablet-07")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestToken_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	a.v.Set("auth.jwt_secret", "s3cr3t")

	out, err := a.execute(ctx, "token", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No device tokens issued.")

	out, err = a.execute(ctx, "token", "issue", "--device", "tablet-07")
	require.NoError(t, err)
	assert.Contains(t, out, "Token issued for tablet-07")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 2, strings.Count(lines[1], "."), "second line is the JWT")

	idStart := strings.Index(lines[0], "ID: ") + len("ID: ")
	id := lines[0][idStart : idStart+36]

	out, err = a.execute(ctx, "token", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "tablet-07")
	assert.Contains(t, out, id)

	out, err = a.execute(ctx, "token", "revoke", id)
	require.NoError(t, err)
	assert.Contains(t, out, "revoked")

	_, err = a.execute(ctx, "token", "revoke", "no-such-id")
	assert.Error(t, err)

	out, err = a.execute(ctx, "token", "prune")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 expired tokens")
}

func TestToken_IssueRequiresDevice(t *testing.T) {
	a := newTestApp(t)
	a.v.Set("auth.jwt_secret", "s3cr3t")
	_, err := a.execute(context.Background(), "token", "issue")
	assert.Error(t, err)
}

func TestServe_InvalidConfig(t *testing.T) {
	a := newTestApp(t)
	a.v.Set("rate_limit.requests", -1)
	_, err := a.execute(context.Background(), "serve")
	assert.Error(t, err)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServe_StartsAndStops(t *testing.T) {
	a := newTestApp(t)
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := a.execute(ctx, "serve", "--addr", addr)
		done <- err
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
