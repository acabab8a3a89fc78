package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/zeebo/xxh3"

	"coursedemand/internal/metrics"
	"coursedemand/internal/parser"
	"coursedemand/internal/schema"
	"coursedemand/internal/survey"
	"coursedemand/pkg/records"
)

// Session holds one interactive reporting session: the prepared wide table
// and the derived long table, memoized by a content hash of the raw input.
// Re-loading byte-identical input is a no-op; any byte change reparses and
// reshapes. Aggregates are never cached here; they are rebuilt per filter
// via Build.
//
// A Session serves a single interactive user and is not safe for concurrent
// mutation.
type Session struct {
	job string

	key    uint64
	loaded bool
	wide   []records.Record
	long   []records.Record
}

// NewSession returns an empty session. job labels metrics.
func NewSession(job string) *Session { return &Session{job: job} }

// Load ingests a raw dataset. The normalize+reshape step is memoized keyed
// by the xxh3 hash of data, so repeated loads of identical content return
// immediately. A schema error (required fields missing) leaves any
// previously loaded dataset in place.
func (s *Session) Load(data []byte, p parser.Parser) error {
	key := xxh3.Hash(data)
	if s.loaded && key == s.key {
		metrics.RecordRows(s.job, "cache_hits", 1)
		return nil
	}

	start := time.Now()
	recs, skipped, err := p.Parse(bytes.NewReader(data))
	metrics.RecordStep(s.job, "parse", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}
	metrics.RecordRows(s.job, "parsed", int64(len(recs)))
	metrics.RecordRows(s.job, "skipped", int64(skipped))

	start = time.Now()
	wide, err := survey.Prepare(recs, parser.HeadersOf(p))
	if err == nil {
		long := survey.Reshape(wide)
		metrics.RecordRows(s.job, "melted", int64(len(long)))
		s.key, s.loaded, s.wide, s.long = key, true, wide, long
	}
	metrics.RecordStep(s.job, "reshape", err, time.Since(start))
	return err
}

// Loaded reports whether the session holds a dataset.
func (s *Session) Loaded() bool { return s.loaded }

// Long returns the cached long-format table.
func (s *Session) Long() []records.Record { return s.long }

// Report rebuilds every aggregate for the given filter.
func (s *Session) Report(f Filter) Report {
	start := time.Now()
	r := Build(s.long, f)
	metrics.RecordStep(s.job, "aggregate", nil, time.Since(start))
	return r
}

// Courses lists the distinct course values in the wide table, sorted, for
// the filter UI.
func (s *Session) Courses() []string { return s.distinct(schema.FieldCourse, s.wide) }

// Choices lists the distinct choice values in the long table, sorted.
func (s *Session) Choices() []string { return s.distinct(schema.FieldChoice, s.long) }

// Years lists the distinct non-zero enrollment years, descending.
func (s *Session) Years() []int {
	set := make(map[int]struct{})
	for _, r := range s.wide {
		if y := r.Int(schema.FieldEnrollYear); y != 0 {
			set[y] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func (s *Session) distinct(field string, rows []records.Record) []string {
	set := make(map[string]struct{})
	for _, r := range rows {
		if v := r.String(field); v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
