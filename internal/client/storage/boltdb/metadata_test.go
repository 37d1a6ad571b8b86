package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "fieldsync_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestSaveAndGetLastSyncTime(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Изначально синхронизации не было
	ts, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	expected := time.Date(2025, 3, 1, 10, 30, 15, 123_000_000, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, expected))

	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, expected.Equal(got))
}

func TestLastSyncTime_MillisecondPrecision(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	withNanos := time.Date(2025, 3, 1, 10, 0, 0, 123_456_789, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, withNanos))

	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, withNanos.Truncate(time.Millisecond), got)
}

func TestPortalURL(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	url, err := store.GetPortalURL(ctx)
	require.NoError(t, err)
	assert.Empty(t, url)

	require.NoError(t, store.SavePortalURL(ctx, "http://192.168.1.20:3000"))
	url, err = store.GetPortalURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.20:3000", url)
}

func TestGetLastSyncTime_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastSyncTime(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")

	err = store.SaveLastSyncTime(ctx, time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
