// Package transformer defines the record-transform step and the Chain that
// composes them into a pipeline.
package transformer

import "coursedemand/pkg/records"

// Transformer rewrites a batch of records.
type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers applied in sequence.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
