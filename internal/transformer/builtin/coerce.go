package builtin

import (
	"strconv"
	"time"

	"coursedemand/pkg/records"
)

// Coerce converts string cells to typed values per field. Cells that fail to
// parse are left as strings; required-field handling happens elsewhere.
type Coerce struct {
	Types  map[string]string // field -> one of: int, date, string
	Layout string            // date layout
}

func (c Coerce) Apply(in []records.Record) []records.Record {
	if len(c.Types) == 0 {
		return in
	}
	for _, r := range in {
		for field, typ := range c.Types {
			v, ok := r[field]
			if !ok || v == nil {
				continue
			}
			s, isStr := v.(string)
			if !isStr {
				continue
			}
			switch typ {
			case "int":
				if i, err := strconv.Atoi(s); err == nil {
					r[field] = i
				}
			case "date":
				if t, err := time.Parse(c.Layout, s); err == nil {
					r[field] = t
				}
			case "string":
				// already string
			}
		}
	}
	return in
}
