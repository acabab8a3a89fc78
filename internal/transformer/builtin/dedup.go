// DeDup collapses duplicate records by a configured key and chooses a winner
// according to a configurable policy:
//
//   - "keep-first"   : keep the earliest occurrence in the batch
//   - "keep-last"    : keep the latest occurrence in the batch (default)
//   - "most-complete": keep the record that has the most non-empty fields;
//     ties break by "keep-last"
//
// The survey pipeline runs it keyed by enrollment id with the default policy
// so that a respondent who resubmits the form counts once, with their latest
// answers. It runs in-memory on a single batch and should run after Normalize
// so empty values are consistent.
package builtin

import (
	"fmt"
	"sort"
	"strings"

	"coursedemand/pkg/records"
)

// DeDup implements a configurable, in-memory de-duplication policy.
type DeDup struct {
	// Keys are the field names that form the respondent key,
	// e.g. ["enrollment_id"].
	Keys []string

	// Policy selects the winner among duplicates: "keep-first", "keep-last",
	// or "most-complete" (default is "keep-last").
	Policy string
}

// Apply executes the de-duplication and returns a new slice containing only
// the winning record for each key. Records missing a key field pass through
// untouched, after the keyed winners.
func (d DeDup) Apply(in []records.Record) []records.Record {
	if len(in) == 0 || len(d.Keys) == 0 {
		return in
	}

	policy := strings.ToLower(strings.TrimSpace(d.Policy))
	if policy == "" {
		policy = "keep-last"
	}

	type slot struct {
		rec   records.Record
		index int // original position in input (0-based)
		score int // completeness score (for most-complete)
	}

	winners := make(map[string]slot, len(in))

	keyOf := func(r records.Record) (string, bool) {
		var b strings.Builder
		for _, k := range d.Keys {
			v, ok := r[k]
			if !ok || v == nil {
				return "", false
			}
			if b.Len() > 0 {
				b.WriteByte('\x1f') // unlikely separator
			}
			switch t := v.(type) {
			case string:
				b.WriteString(t)
			default:
				b.WriteString(fmt.Sprint(t))
			}
		}
		return b.String(), true
	}

	scoreOf := func(r records.Record) int {
		score := 0
		for _, v := range r {
			if v == nil || v == "" {
				continue
			}
			score++
		}
		return score
	}

	for i, r := range in {
		key, ok := keyOf(r)
		if !ok {
			continue
		}
		switch policy {
		case "keep-first":
			if _, exists := winners[key]; !exists {
				winners[key] = slot{rec: r, index: i}
			}
		case "most-complete":
			s := slot{rec: r, index: i, score: scoreOf(r)}
			if prev, exists := winners[key]; !exists || s.score > prev.score ||
				(s.score == prev.score && s.index > prev.index) {
				winners[key] = s
			}
		default: // "keep-last"
			winners[key] = slot{rec: r, index: i}
		}
	}

	// Winners come out in stable position order, then non-keyed records in
	// original order.
	indexes := make([]int, 0, len(winners))
	byIndex := make(map[int]records.Record, len(winners))
	for _, s := range winners {
		indexes = append(indexes, s.index)
		byIndex[s.index] = s.rec
	}
	sort.Ints(indexes)

	out := make([]records.Record, 0, len(winners))
	for _, idx := range indexes {
		out = append(out, byIndex[idx])
	}
	for _, r := range in {
		if _, ok := keyOf(r); !ok {
			out = append(out, r)
		}
	}
	return out
}
