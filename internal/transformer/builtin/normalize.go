package builtin

import (
	"strings"

	"coursedemand/pkg/records"
)

const nbspace = "\u00a0"

// Normalize cleans every string cell in place: NBSP becomes a plain space and
// surrounding whitespace is trimmed. Cells trimmed down to "" become nil so
// the rest of the pipeline sees them as missing.
type Normalize struct{}

func (Normalize) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for k, v := range r {
			if s, ok := v.(string); ok {
				s = strings.TrimSpace(strings.ReplaceAll(s, nbspace, " "))
				if s == "" {
					r[k] = nil
				} else {
					r[k] = s
				}
			}
		}
	}
	return in
}
