package report

import (
	"sort"

	"coursedemand/internal/schema"
	"coursedemand/pkg/records"
)

// Demand is the consolidated interest in one course choice: the total number
// of (respondent, rank) rows naming it, broken down by rank label.
type Demand struct {
	Choice string         `json:"choice"`
	Total  int            `json:"total"`
	ByRank map[string]int `json:"by_rank"`
}

// DemandByChoice aggregates the long table into per-choice demand, ordered
// by descending total with ascending choice name as the tiebreak.
func DemandByChoice(long []records.Record) []Demand {
	byChoice := make(map[string]*Demand)
	for _, r := range long {
		choice := r.String(schema.FieldChoice)
		d, ok := byChoice[choice]
		if !ok {
			d = &Demand{Choice: choice, ByRank: make(map[string]int, len(schema.RankFields))}
			byChoice[choice] = d
		}
		d.Total++
		d.ByRank[r.String(schema.FieldRank)]++
	}

	out := make([]Demand, 0, len(byChoice))
	for _, d := range byChoice {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Choice < out[j].Choice
	})
	return out
}
