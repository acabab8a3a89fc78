package report

import (
	"sort"

	"coursedemand/internal/schema"
	"coursedemand/pkg/records"
)

// CourseCount is the number of unique respondents from one course.
type CourseCount struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// YearCount is the number of unique respondents with one enrollment year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Summary is the numeric overview of the detail rows: unique respondents in
// total and split by course and enrollment year. Respondents are identified
// by enrollment id, so a student who appears on several (respondent, rank)
// rows counts once.
type Summary struct {
	Respondents int           `json:"respondents"`
	ByCourse    []CourseCount `json:"by_course"`
	ByYear      []YearCount   `json:"by_year"`
}

// Summarize computes the Summary over the given rows. The unknown year 0 is
// excluded from the per-year table. ByCourse is ordered by descending count
// then course name; ByYear by descending year.
func Summarize(rows []records.Record) Summary {
	type student struct {
		course string
		year   int
	}
	seen := make(map[string]student)
	for _, r := range rows {
		id := r.String(schema.FieldEnrollmentID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = student{
				course: r.String(schema.FieldCourse),
				year:   r.Int(schema.FieldEnrollYear),
			}
		}
	}

	byCourse := make(map[string]int)
	byYear := make(map[int]int)
	for _, st := range seen {
		byCourse[st.course]++
		if st.year != 0 {
			byYear[st.year]++
		}
	}

	s := Summary{Respondents: len(seen)}
	for c, n := range byCourse {
		s.ByCourse = append(s.ByCourse, CourseCount{Course: c, Count: n})
	}
	sort.Slice(s.ByCourse, func(i, j int) bool {
		if s.ByCourse[i].Count != s.ByCourse[j].Count {
			return s.ByCourse[i].Count > s.ByCourse[j].Count
		}
		return s.ByCourse[i].Course < s.ByCourse[j].Course
	})
	for y, n := range byYear {
		s.ByYear = append(s.ByYear, YearCount{Year: y, Count: n})
	}
	sort.Slice(s.ByYear, func(i, j int) bool { return s.ByYear[i].Year > s.ByYear[j].Year })
	return s
}
