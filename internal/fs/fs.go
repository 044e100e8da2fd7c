// Package fs defines the filesystem abstraction used by dump-pruner.
// It provides the FS interface and the OS-backed implementation.
package fs

import (
	"context"
	"errors"
)

// ErrNotDir is returned when the backup path exists but is not a directory.
var ErrNotDir = errors.New("not a directory")

type FS interface {
	// List returns the plain files directly inside dir whose names match pattern.
	List(ctx context.Context, dir, pattern string) ([]string, error)
	// Remove deletes path. It reports false when the file was already gone.
	Remove(ctx context.Context, path string) (bool, error)
}
