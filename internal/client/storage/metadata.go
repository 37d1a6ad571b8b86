package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the time of the last successful sync cycle
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the time of the last successful sync cycle
	// Returns zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// SavePortalURL saves the portal endpoint configured on this device
	SavePortalURL(ctx context.Context, url string) error

	// GetPortalURL returns the configured portal endpoint or an empty string
	GetPortalURL(ctx context.Context) (string, error)
}
