package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenNotFound indicates that device token was not found
	ErrTokenNotFound = errors.New("device token not found")

	// ErrBackupNotFound indicates that backup metadata was not found
	ErrBackupNotFound = errors.New("backup not found")
)
