// Package file implements a local filesystem-backed survey source, used for
// the "user uploaded an export file" path.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local is a data source that opens a survey export from the local disk.
type Local struct{ path string }

// NewLocal returns a Local source bound to the provided filesystem path.
func NewLocal(path string) *Local { return &Local{path: path} }

// Open opens the configured path for reading.
//
// If the context is already canceled at the time of the call, Open returns
// the context error without touching the filesystem. Filesystem errors are
// wrapped with the path while still permitting errors.Is checks
// (e.g., errors.Is(err, os.ErrNotExist)).
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}
