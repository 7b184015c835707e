package storage

import (
	"context"
	"errors"
)

// ArchiveStorage defines the object storage operations used for user archives.
type ArchiveStorage interface {
	// PutObject uploads body under objectKey, replacing any existing object.
	PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error
}

// ErrNotConfigured is returned by NewS3Storage when no bucket is set.
var ErrNotConfigured = errors.New("object storage is not configured")
