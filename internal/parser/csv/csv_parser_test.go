package csv

import (
	"reflect"
	"strings"
	"testing"

	"coursedemand/pkg/records"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		opt         Options
		in          string
		want        []records.Record
		wantSkipped int
	}{
		{
			name: "header_slugged",
			opt:  Options{HasHeader: true},
			in:   "Full Name,Course\nAlice,Engineering\n",
			want: []records.Record{
				{"full_name": "Alice", "course": "Engineering"},
			},
		},
		{
			name: "header_map_applied",
			opt: Options{
				HasHeader: true,
				HeaderMap: map[string]string{"Número de Matrícula": "enrollment_id"},
			},
			in: "Número de Matrícula,Curso\n2022001,Engineering\n",
			want: []records.Record{
				{"enrollment_id": "2022001", "curso": "Engineering"},
			},
		},
		{
			name: "bom_stripped_from_first_header",
			opt:  Options{HasHeader: true},
			in:   "\uFEFFName,Course\nAlice,Engineering\n",
			want: []records.Record{
				{"name": "Alice", "course": "Engineering"},
			},
		},
		{
			name: "empty_cells_become_nil",
			opt:  Options{HasHeader: true},
			in:   "a,b,c\n1,,3\n",
			want: []records.Record{
				{"a": "1", "b": nil, "c": "3"},
			},
		},
		{
			name: "trim_space",
			opt:  Options{HasHeader: true, TrimSpace: true},
			in:   "a,b\n 1 ,  \n",
			want: []records.Record{
				{"a": "1", "b": nil},
			},
		},
		{
			name:        "short_rows_skipped_and_counted",
			opt:         Options{HasHeader: true},
			in:          "a,b,c\n1,2,3\n1,2\n4,5,6\n",
			want:        []records.Record{{"a": "1", "b": "2", "c": "3"}, {"a": "4", "b": "5", "c": "6"}},
			wantSkipped: 1,
		},
		{
			name: "no_header_uses_col_names",
			opt:  Options{},
			in:   "1,2\n",
			want: []records.Record{
				{"col_0": "1", "col_1": "2"},
			},
		},
		{
			name: "custom_comma",
			opt:  Options{HasHeader: true, Comma: ';'},
			in:   "a;b\n1;2\n",
			want: []records.Record{
				{"a": "1", "b": "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped, err := NewParser(tt.opt).Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if skipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", skipped, tt.wantSkipped)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A header-only export parses to zero records but keeps the canonical header
// set available, so downstream can tell an empty dataset from wrong columns.
func TestHeadersAfterHeaderOnlyInput(t *testing.T) {
	p := NewParser(Options{
		HasHeader: true,
		HeaderMap: map[string]string{"Número de Matrícula": "enrollment_id"},
	})

	got, skipped, err := p.Parse(strings.NewReader("Número de Matrícula,Curso\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 || skipped != 0 {
		t.Errorf("Parse() = %v (skipped %d), want no records", got, skipped)
	}
	want := []string{"enrollment_id", "curso"}
	if !reflect.DeepEqual(p.Headers(), want) {
		t.Errorf("Headers() = %v, want %v", p.Headers(), want)
	}

	// Headers reflect the latest parse only.
	if _, _, err := p.Parse(strings.NewReader("a,b\n1,2\n")); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(p.Headers(), []string{"a", "b"}) {
		t.Errorf("Headers() = %v after re-parse, want [a b]", p.Headers())
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, _, err := NewParser(Options{HasHeader: true}).Parse(strings.NewReader(""))
	if err == nil {
		t.Error("Parse() on empty input with HasHeader did not fail")
	}
}
