package survey

import (
	"reflect"
	"testing"

	"coursedemand/pkg/records"
)

func TestDenied(t *testing.T) {
	tests := []struct {
		name string
		v    string
		want bool
	}{
		{"exact_match", "outros", true},
		{"case_insensitive", "OUTROS", true},
		{"diacritics_folded", "nao tenho interesse", true},
		{"surrounding_space_ignored", "  outro  ", true},
		{"real_answer_kept", "Quero adiantar a matriz", false},
		{"empty_not_denied", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Denied(tt.v); got != tt.want {
				t.Errorf("Denied(%q) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFilterDenied(t *testing.T) {
	in := []records.Record{
		{"motivation": "Outros"},
		{"motivation": "Quero adiantar a matriz"},
		{"motivation": "não tenho interesse"},
		{"motivation": "Reprovei a disciplina"},
	}
	want := []records.Record{
		{"motivation": "Quero adiantar a matriz"},
		{"motivation": "Reprovei a disciplina"},
	}
	got := FilterDenied(in, "motivation")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterDenied() = %v, want %v", got, want)
	}
}

func TestFilterDeniedLeavesInputIntact(t *testing.T) {
	in := []records.Record{
		{"motivation": "outros"},
		{"motivation": "Quero adiantar a matriz"},
	}
	FilterDenied(in, "motivation")
	if in[0].String("motivation") != "outros" || in[1].String("motivation") != "Quero adiantar a matriz" {
		t.Errorf("input slice mutated: %v", in)
	}
}

func TestFilterDeniedAllDenied(t *testing.T) {
	in := []records.Record{
		{"motivation": "outros"},
		{"motivation": "outro"},
	}
	if got := FilterDenied(in, "motivation"); len(got) != 0 {
		t.Errorf("FilterDenied() = %v, want empty", got)
	}
}
