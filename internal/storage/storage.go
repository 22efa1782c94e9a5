package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrNotFound = errors.New("storage: object not found")

// BlobStore holds file contents. Keys are slash separated paths.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get returns ErrNotFound when the key does not exist
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error

	PublicURL(key string) string
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
