package storage

import (
	"context"
	"io"
)

// Storage defines the interface for blob storage used by listing images.
type Storage interface {
	// Save writes content under the relative path, creating parents as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the blob stored under path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL the router serves path under.
	URL(path string) string
}
