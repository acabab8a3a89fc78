package parser

import (
	"io"

	"coursedemand/pkg/records"
)

// Parser turns raw bytes into records. The int return is the number of rows
// soft-skipped (malformed or wrong width); skipping is not an error.
type Parser interface {
	Parse(r io.Reader) ([]records.Record, int, error)
}

// HeaderLister is implemented by parsers that retain the canonical header set
// of the last input they parsed. A header-only export parses to zero records,
// so the headers are the only evidence of which columns the input carried.
type HeaderLister interface {
	Headers() []string
}

// HeadersOf returns p's last-parsed headers, or nil when p does not track them.
func HeadersOf(p Parser) []string {
	if hl, ok := p.(HeaderLister); ok {
		return hl.Headers()
	}
	return nil
}
