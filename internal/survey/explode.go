package survey

import (
	"strings"

	"coursedemand/pkg/records"
)

// Explode unpacks a comma-delimited multi-select field into one row per
// selected label. Each output row is a copy of the input row with field set
// to a single trimmed label. Rows whose field is missing, empty, or contains
// only empty labels contribute zero output rows.
func Explode(in []records.Record, field string) []records.Record {
	var out []records.Record
	for _, r := range in {
		s := r.String(field)
		if s == "" {
			continue
		}
		for _, part := range strings.Split(s, ",") {
			label := strings.TrimSpace(part)
			if label == "" {
				continue
			}
			nr := r.Clone()
			nr[field] = label
			out = append(out, nr)
		}
	}
	return out
}
