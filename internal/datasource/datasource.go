// Package datasource abstracts where a survey export comes from: an uploaded
// local file or a remote spreadsheet connection. A Source yields raw bytes;
// parsing and column recognition happen downstream.
package datasource

import (
	"context"
	"io"
)

// Source opens a raw tabular dataset for reading. Open errors carry the
// underlying cause so the UI can prompt the user to retry with a different
// input; no automatic retry happens at this level.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
