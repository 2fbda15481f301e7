package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo contains metadata about a stored object.
type FileInfo struct {
	// Key is the object's unique key within the store.
	Key string
	// Path is the backend-specific location, e.g. an absolute filesystem path.
	Path string
	// Size is the object size in bytes.
	Size int64
	// ModTime is the object's last modification time.
	ModTime time.Time
}

// Storage is the blob store interface for uploaded audio files.
type Storage interface {
	// Save writes data from reader under a new unique key derived from name
	// and returns metadata for the stored object. The original name only
	// influences the key's readable suffix; collisions are impossible.
	Save(ctx context.Context, name string, reader io.Reader) (*FileInfo, error)

	// Open returns a reader for the object with the given key.
	// The caller is responsible for closing the returned ReadCloser.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object with the given key.
	// Deleting a key that does not exist is not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks whether an object exists under the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// List returns metadata for stored objects, oldest first.
	List(ctx context.Context) ([]FileInfo, error)
}
