// Package survey implements the tabular reshape at the heart of the
// reporting pipeline: column normalization against the static field map,
// the wide-to-long melt of the ranked-choice columns, and the expansion of
// comma-packed multi-select answers.
package survey

import (
	"fmt"
	"sort"
	"strings"

	"coursedemand/internal/schema"
	"coursedemand/internal/transformer"
	"coursedemand/internal/transformer/builtin"
	"coursedemand/pkg/records"
)

// MissingFieldsError reports required fields absent after normalization.
// It is terminal for the dataset: nothing downstream runs until the input is
// re-mapped or re-uploaded.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("required survey fields missing after normalization: %s",
		strings.Join(e.Fields, ", "))
}

// NormalizeColumns renames record keys present in fieldMap to their canonical
// names. Keys not in the map pass through untouched; there is no error for
// unmapped columns. Input records are not mutated.
func NormalizeColumns(in []records.Record, fieldMap map[string]string) []records.Record {
	out := make([]records.Record, len(in))
	for i, r := range in {
		nr := make(records.Record, len(r))
		for k, v := range r {
			if canonical, ok := fieldMap[k]; ok {
				nr[canonical] = v
			} else {
				nr[k] = v
			}
		}
		out[i] = nr
	}
	return out
}

// VerifyRequired checks that every required field is present as a column:
// either listed in headers (the parsed header row, already canonical) or
// appearing as a key in at least one record. A header-only export therefore
// passes with zero records; it is a valid empty dataset, not a schema error.
// On failure it returns a MissingFieldsError naming each absent field, sorted
// for stable messages.
func VerifyRequired(in []records.Record, headers, required []string) error {
	cols := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		cols[h] = struct{}{}
	}
	for _, r := range in {
		for k := range r {
			cols[k] = struct{}{}
		}
	}
	var missing []string
	for _, f := range required {
		if _, ok := cols[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// Prepare runs the full wide-table preparation: canonical renaming, the
// required-column check, and the cleaning chain (whitespace normalization,
// placeholder-choice scrubbing, resubmission de-dup, enrollment-year
// derivation, timestamp coercion). headers is the parsed header row when the
// parser tracks one; it keeps a header-only export (zero respondents) valid.
// The returned table is new; the input is not reused.
func Prepare(in []records.Record, headers []string) ([]records.Record, error) {
	out := NormalizeColumns(in, schema.FieldMap)
	if err := VerifyRequired(out, headers, schema.RequiredFields); err != nil {
		return nil, err
	}
	chain := transformer.Chain{
		builtin.Normalize{},
		&builtin.Scrub{Fields: schema.RankFields, Phrases: schema.PlaceholderChoices},
		builtin.DeDup{Keys: []string{schema.FieldEnrollmentID}},
		builtin.DeriveYear{From: schema.FieldEnrollmentID, To: schema.FieldEnrollYear},
		builtin.Coerce{
			Types:  map[string]string{schema.FieldTimestamp: "date"},
			Layout: "2006/01/02 15:04:05",
		},
	}
	return chain.Apply(out), nil
}
