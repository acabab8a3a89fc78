package survey

import (
	"coursedemand/internal/schema"
	"coursedemand/internal/textnorm"
	"coursedemand/pkg/records"
)

var motivationDeny = textnorm.NewSet(schema.MotivationDenylist)

// Denied reports whether a motivation value matches the static denylist
// (case-insensitively, diacritics folded).
func Denied(v string) bool {
	return motivationDeny.Contains(v)
}

// FilterDenied returns the rows whose field value is not denylisted, leaving
// the input slice untouched. It runs after Explode and before aggregation, so
// a respondent who only ticked generic answers simply contributes nothing to
// the motivation aggregate.
func FilterDenied(in []records.Record, field string) []records.Record {
	out := make([]records.Record, 0, len(in))
	for _, r := range in {
		if Denied(r.String(field)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
