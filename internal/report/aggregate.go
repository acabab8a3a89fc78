// Package report computes the derived aggregate tables served to the UI:
// demand per course choice, availability and motivation distributions, and
// the numeric summary. Every function is a pure projection over the long
// table; nothing here is cached, so percentages always describe the
// currently filtered row population.
package report

import (
	"sort"
	"strings"

	"coursedemand/pkg/records"
)

// Group is one row of a count aggregate: the group-by key values, the row
// count, and the count as a percentage (0-100) of all rows in the current
// filtered view.
type Group struct {
	Keys  []string `json:"keys"`
	Count int      `json:"count"`
	Pct   float64  `json:"pct"`
}

// Label renders the group key for display.
func (g Group) Label() string { return strings.Join(g.Keys, " / ") }

// CountBy groups rows by the given fields and returns counts and
// percentages, ordered by descending count with ascending key as the
// tiebreak so output is deterministic. An empty input yields a nil slice,
// which consumers render as "nothing to show".
func CountBy(in []records.Record, fields ...string) []Group {
	if len(in) == 0 || len(fields) == 0 {
		return nil
	}

	type bucket struct {
		keys  []string
		count int
	}
	buckets := make(map[string]*bucket)
	for _, r := range in {
		keys := make([]string, len(fields))
		for i, f := range fields {
			keys[i] = r.String(f)
		}
		joined := strings.Join(keys, "\x1f")
		b, ok := buckets[joined]
		if !ok {
			b = &bucket{keys: keys}
			buckets[joined] = b
		}
		b.count++
	}

	total := len(in)
	out := make([]Group, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Group{
			Keys:  b.keys,
			Count: b.count,
			Pct:   100 * float64(b.count) / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.Join(out[i].Keys, "\x1f") < strings.Join(out[j].Keys, "\x1f")
	})
	return out
}
