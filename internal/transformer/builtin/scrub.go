package builtin

import (
	"coursedemand/internal/textnorm"
	"coursedemand/pkg/records"
)

// Scrub blanks configured boilerplate phrases out of the given fields.
// The form inserts explicit "no Nth choice" answers into the ranked-choice
// columns; blanking them makes an explicit non-answer indistinguishable from
// a blank one, which is what the reshape expects. Matching is
// case-insensitive and diacritic-folded.
type Scrub struct {
	Fields  []string
	Phrases []string

	set textnorm.Set
}

func (s *Scrub) Apply(in []records.Record) []records.Record {
	if s.set == nil {
		s.set = textnorm.NewSet(s.Phrases)
	}
	for _, r := range in {
		for _, f := range s.Fields {
			v, ok := r[f]
			if !ok || v == nil {
				continue
			}
			if str, isStr := v.(string); isStr && s.set.Contains(str) {
				r[f] = nil
			}
		}
	}
	return in
}
