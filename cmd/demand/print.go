package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"coursedemand/internal/report"
	"coursedemand/internal/schema"
)

// printReport renders the full report as console tables.
func printReport(rep report.Report) {
	heading := color.New(color.FgYellow, color.Bold)

	heading.Println("\nDemand by choice")
	if len(rep.Demand) == 0 {
		fmt.Println("No data for the current filters.")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Choice", "Total", "1st", "2nd", "3rd"})
	for _, d := range rep.Demand {
		table.Append([]string{
			d.Choice,
			strconv.Itoa(d.Total),
			strconv.Itoa(d.ByRank[schema.FieldChoice1]),
			strconv.Itoa(d.ByRank[schema.FieldChoice2]),
			strconv.Itoa(d.ByRank[schema.FieldChoice3]),
		})
	}
	table.Render()

	heading.Println("\nSummary")
	fmt.Printf("%d unique respondents in the current selection.\n", rep.Summary.Respondents)
	if len(rep.Summary.ByCourse) > 0 {
		table = tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Course", "Respondents"})
		for _, c := range rep.Summary.ByCourse {
			table.Append([]string{c.Course, strconv.Itoa(c.Count)})
		}
		table.Render()
	}
	if len(rep.Summary.ByYear) > 0 {
		table = tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Enrollment year", "Respondents"})
		for _, y := range rep.Summary.ByYear {
			table.Append([]string{strconv.Itoa(y.Year), strconv.Itoa(y.Count)})
		}
		table.Render()
	}

	printDistribution(heading, "Availability", "Shift", rep.Availability,
		"No availability recorded for the current filters.")
	printDistribution(heading, "Motivations", "Motivation", rep.Motivation,
		"No motivations beyond the generic answers for the current filters.")
}

func printDistribution(heading *color.Color, title, keyHeader string, groups []report.Group, emptyMsg string) {
	heading.Println("\n" + title)
	if len(groups) == 0 {
		fmt.Println(emptyMsg)
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{keyHeader, "Count", "%"})
	for _, g := range groups {
		table.Append([]string{g.Label(), strconv.Itoa(g.Count), fmt.Sprintf("%.1f", g.Pct)})
	}
	table.Render()
}
