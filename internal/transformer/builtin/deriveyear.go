package builtin

import (
	"strconv"

	"coursedemand/pkg/records"
)

// DeriveYear extracts the enrollment year from the leading four digits of the
// From field and stores it as an int in To. Records whose id is missing or
// does not start with four digits get year 0, which downstream views treat as
// "unknown" rather than an error.
type DeriveYear struct {
	From string
	To   string
}

func (d DeriveYear) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		r[d.To] = yearPrefix(r.String(d.From))
	}
	return in
}

func yearPrefix(id string) int {
	if len(id) < 4 {
		return 0
	}
	y, err := strconv.Atoi(id[:4])
	if err != nil || y < 0 {
		return 0
	}
	return y
}
