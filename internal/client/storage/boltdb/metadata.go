package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fieldsync/internal/client/storage"
)

const (
	keyLastSyncTime = "last_sync_time"
	keyPortalURL    = "portal_url"
)

// SaveLastSyncTime saves the time of the last successful sync cycle
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	// Храним unix-миллисекунды, как это делает портал
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixMilli()))

	if err := s.putMetadata(keyLastSyncTime, buf); err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}
	return nil
}

// GetLastSyncTime retrieves the time of the last successful sync cycle
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	raw, err := s.getMetadata(keyLastSyncTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}
	if len(raw) != 8 {
		// Синхронизации еще не было
		return time.Time{}, nil
	}
	return time.UnixMilli(int64(binary.BigEndian.Uint64(raw))).UTC(), nil
}

// SavePortalURL saves the configured portal endpoint
func (s *Storage) SavePortalURL(ctx context.Context, url string) error {
	if err := s.putMetadata(keyPortalURL, []byte(url)); err != nil {
		return fmt.Errorf("failed to save portal url: %w", err)
	}
	return nil
}

// GetPortalURL returns the configured portal endpoint or an empty string
func (s *Storage) GetPortalURL(ctx context.Context) (string, error) {
	raw, err := s.getMetadata(keyPortalURL)
	if err != nil {
		return "", fmt.Errorf("failed to get portal url: %w", err)
	}
	return string(raw), nil
}

func (s *Storage) putMetadata(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		return bucket.Put([]byte(key), value)
	})
}

// getMetadata возвращает копию значения: слайсы bbolt живут только внутри транзакции
func (s *Storage) getMetadata(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if v := bucket.Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	return value, err
}
