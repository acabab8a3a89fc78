// Package records defines the row model shared by parsers, transformers and
// the reporting layer. A Record is one tabular row keyed by canonical column
// name. Empty input cells are stored as nil rather than "" so that "missing"
// survives type coercion.
package records

import "strconv"

// Record is a single row of tabular data.
type Record map[string]any

// String returns the value for key as a string, or "" when the key is absent,
// nil, or not a string.
func (r Record) String(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Int returns the value for key as an int. Stored ints are returned as-is;
// numeric strings are parsed. Anything else yields 0.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

// Empty reports whether key is absent, nil, or an empty string.
func (r Record) Empty(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return true
	}
	s, isStr := v.(string)
	return isStr && s == ""
}

// Clone returns a shallow copy of the record. Values are shared; for the
// string/int/nil cells this pipeline carries that is a full copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
