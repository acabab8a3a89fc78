package report

import (
	"reflect"
	"testing"

	"coursedemand/pkg/records"
)

// longRow builds one long-format row with the common identity fields filled.
func longRow(id string, year int, course, rank, choice, avail, motiv string) records.Record {
	return records.Record{
		"enrollment_id":   id,
		"enrollment_year": year,
		"course":          course,
		"rank":            rank,
		"choice":          choice,
		"availability":    avail,
		"motivation":      motiv,
	}
}

func sampleLong() []records.Record {
	return []records.Record{
		longRow("A", 2022, "Engineering", "choice_1", "Calculus", "Morning, Evening", "Graduate early"),
		longRow("A", 2022, "Engineering", "choice_2", "Physics", "Morning, Evening", "Graduate early"),
		longRow("B", 2023, "Engineering", "choice_1", "Physics", "Evening", "Outros"),
		longRow("B", 2023, "Engineering", "choice_2", "Calculus", "Evening", "Outros"),
		longRow("C", 2023, "Mathematics", "choice_1", "Calculus", "Morning", "Failed it before"),
	}
}

func TestDemandByChoice(t *testing.T) {
	got := DemandByChoice(sampleLong())
	want := []Demand{
		{Choice: "Calculus", Total: 3, ByRank: map[string]int{"choice_1": 2, "choice_2": 1}},
		{Choice: "Physics", Total: 2, ByRank: map[string]int{"choice_1": 1, "choice_2": 1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DemandByChoice() = %v, want %v", got, want)
	}
}

func TestDemandByChoiceTieBreak(t *testing.T) {
	long := []records.Record{
		longRow("A", 2022, "Eng", "choice_1", "Physics", "", ""),
		longRow("B", 2022, "Eng", "choice_1", "Algebra", "", ""),
	}
	got := DemandByChoice(long)
	if got[0].Choice != "Algebra" || got[1].Choice != "Physics" {
		t.Errorf("tied choices not in ascending name order: %v", got)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleLong())
	want := Summary{
		Respondents: 3,
		ByCourse: []CourseCount{
			{Course: "Engineering", Count: 2},
			{Course: "Mathematics", Count: 1},
		},
		ByYear: []YearCount{
			{Year: 2023, Count: 2},
			{Year: 2022, Count: 1},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestSummarizeExcludesUnknownYear(t *testing.T) {
	long := []records.Record{
		longRow("A", 0, "Eng", "choice_1", "Calculus", "", ""),
		longRow("B", 2022, "Eng", "choice_1", "Physics", "", ""),
	}
	got := Summarize(long)
	if got.Respondents != 2 {
		t.Errorf("Respondents = %d, want 2", got.Respondents)
	}
	if !reflect.DeepEqual(got.ByYear, []YearCount{{Year: 2022, Count: 1}}) {
		t.Errorf("ByYear = %v, want year 0 excluded", got.ByYear)
	}
}

func TestFilterApply(t *testing.T) {
	long := sampleLong()

	tests := []struct {
		name     string
		filter   Filter
		wantRows int
	}{
		{"zero_filter_returns_all", Filter{}, 5},
		{"by_course", Filter{Course: "Mathematics"}, 1},
		{"by_year", Filter{Year: 2023}, 3},
		{"by_choice", Filter{Choice: "Calculus"}, 3},
		{"combined", Filter{Course: "Engineering", Year: 2023, Choice: "Physics"}, 1},
		{"no_match_is_empty_not_error", Filter{Course: "Chemistry"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Apply(long); len(got) != tt.wantRows {
				t.Errorf("Apply() returned %d rows, want %d", len(got), tt.wantRows)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	r := Build(sampleLong(), Filter{})

	if r.Rows != 5 {
		t.Errorf("Rows = %d, want 5", r.Rows)
	}
	if len(r.Demand) != 2 || r.Demand[0].Choice != "Calculus" || r.Demand[0].Total != 3 {
		t.Errorf("Demand = %v, want Calculus first with total 3", r.Demand)
	}
	if r.Summary.Respondents != 3 {
		t.Errorf("Respondents = %d, want 3", r.Summary.Respondents)
	}

	// Availability is exploded per label: A contributes Morning and Evening
	// from both of its rows.
	avail := map[string]int{}
	for _, g := range r.Availability {
		avail[g.Keys[0]] = g.Count
	}
	if avail["Morning"] != 3 || avail["Evening"] != 4 {
		t.Errorf("Availability = %v, want Morning=3 Evening=4", avail)
	}

	// B's "Outros" is denylisted and must not appear in the motivation table.
	for _, g := range r.Motivation {
		if g.Keys[0] == "Outros" {
			t.Errorf("denylisted motivation leaked into aggregate: %v", r.Motivation)
		}
	}
}

func TestBuildChoiceFilterNarrowsDetailOnly(t *testing.T) {
	r := Build(sampleLong(), Filter{Choice: "Physics"})

	// Demand still covers every choice in the course/year selection.
	if len(r.Demand) != 2 {
		t.Errorf("Demand = %v, want both choices despite choice filter", r.Demand)
	}
	// Detail tables narrow to the two Physics rows (respondents A and B).
	if r.Rows != 2 {
		t.Errorf("Rows = %d, want 2", r.Rows)
	}
	if r.Summary.Respondents != 2 {
		t.Errorf("Respondents = %d, want 2", r.Summary.Respondents)
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	r := Build(nil, Filter{})
	if r.Rows != 0 || r.Demand != nil || r.Summary.Respondents != 0 {
		t.Errorf("Build(nil) = %+v, want empty report", r)
	}
}
