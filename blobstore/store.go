package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

var (
	// ErrNotFound is returned when a blob does not exist.
	//
	// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
	// The default maps to `os.ErrNotExist`.
	ErrNotFound = os.ErrNotExist

	// ErrInvalidName is returned for empty names or names that escape the
	// store root.
	ErrInvalidName = errors.New("blobstore: invalid blob name")
)

// Store persists whole blobs by name. Names use forward slashes.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a blob atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the content of a blob or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ValidName reports whether name is a non-empty relative path that stays
// inside the store root.
func ValidName(name string) bool {
	return name != "" && filepath.IsLocal(filepath.FromSlash(name))
}
