package report

import (
	"coursedemand/internal/schema"
	"coursedemand/internal/survey"
	"coursedemand/pkg/records"
)

// Report bundles every aggregate the UI shows for one filter selection.
// Demand covers the course/year-filtered long table; Summary, Availability
// and Motivation additionally narrow to the selected choice, mirroring the
// dashboard's "details" section.
type Report struct {
	Filter       Filter   `json:"filter"`
	Rows         int      `json:"rows"` // detail rows after filtering
	Demand       []Demand `json:"demand"`
	Summary      Summary  `json:"summary"`
	Availability []Group  `json:"availability"`
	Motivation   []Group  `json:"motivation"`
}

// Build computes a Report over the long table. It is recomputed in full on
// every filter change; percentages are always relative to the rows the
// filter selects, never to the unfiltered dataset.
func Build(long []records.Record, f Filter) Report {
	global := Filter{Course: f.Course, Year: f.Year}.Apply(long)
	detail := global
	if f.Choice != "" {
		detail = (Filter{Choice: f.Choice}).Apply(global)
	}

	return Report{
		Filter:  f,
		Rows:    len(detail),
		Demand:  DemandByChoice(global),
		Summary: Summarize(detail),
		Availability: CountBy(
			survey.Explode(detail, schema.FieldAvailability),
			schema.FieldAvailability,
		),
		Motivation: CountBy(
			survey.FilterDenied(
				survey.Explode(detail, schema.FieldMotivation),
				schema.FieldMotivation,
			),
			schema.FieldMotivation,
		),
	}
}
