package report

import (
	"coursedemand/internal/schema"
	"coursedemand/pkg/records"
)

// Filter is the user's current selection. Zero values ("" / 0) mean "all".
type Filter struct {
	Course string `json:"course,omitempty"`
	Year   int    `json:"year,omitempty"`
	Choice string `json:"choice,omitempty"`
}

// Apply returns the rows matching the filter. The result is a new slice over
// the same records; an empty result is a valid "nothing to show" state.
func (f Filter) Apply(in []records.Record) []records.Record {
	if f.Course == "" && f.Year == 0 && f.Choice == "" {
		return in
	}
	var out []records.Record
	for _, r := range in {
		if f.Course != "" && r.String(schema.FieldCourse) != f.Course {
			continue
		}
		if f.Year != 0 && r.Int(schema.FieldEnrollYear) != f.Year {
			continue
		}
		if f.Choice != "" && r.String(schema.FieldChoice) != f.Choice {
			continue
		}
		out = append(out, r)
	}
	return out
}
