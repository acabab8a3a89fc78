package survey

import (
	"coursedemand/internal/schema"
	"coursedemand/internal/transformer/builtin"
	"coursedemand/pkg/records"
)

// Melt reshapes a wide table into a long one: one output row per
// (respondent, rank) pair, carrying idVars unchanged plus the rank label
// (the rank column's name, under rankVar) and that rank's value (under
// valueVar). Output order is rank-major: all rank-1 rows in input order,
// then rank-2, then rank-3. Aggregation downstream is order-independent,
// but the ordering keeps runs reproducible.
//
// Rows with an empty value are kept here; callers drop them (Reshape does).
func Melt(in []records.Record, idVars, rankFields []string, rankVar, valueVar string) []records.Record {
	out := make([]records.Record, 0, len(in)*len(rankFields))
	for _, rank := range rankFields {
		for _, r := range in {
			nr := make(records.Record, len(idVars)+2)
			for _, id := range idVars {
				nr[id] = r[id]
			}
			nr[rankVar] = rank
			nr[valueVar] = r[rank]
			out = append(out, nr)
		}
	}
	return out
}

// Reshape produces the long-format table for the survey schema: melt of the
// three ranked-choice columns over the identity fields, with empty choices
// dropped. A respondent who left a lower-priority choice blank contributes
// fewer rows; a dataset with no choices at all yields an empty table, which
// downstream treats as "no data", not an error.
func Reshape(in []records.Record) []records.Record {
	long := Melt(in, schema.IdentityFields, schema.RankFields, schema.FieldRank, schema.FieldChoice)
	return builtin.Require{Fields: []string{schema.FieldChoice}}.Apply(long)
}
