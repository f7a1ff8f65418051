package storage

import (
	"context"
	"io"
)

// Storage abstracts where vehicle photos live. The local implementation
// keeps files on disk; a cloud backend would satisfy the same interface.
type Storage interface {
	// Save writes the file under key, replacing any previous content.
	Save(ctx context.Context, key string, reader io.Reader) error

	// Open returns a reader for the file under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether a file is stored under key and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the file under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
