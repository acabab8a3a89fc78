// Command sheetprobe inspects a survey export's header row and reports how
// each column maps onto the canonical field names, plus which required
// fields are missing. Useful when the form wording changes and the field
// map needs updating.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"coursedemand/internal/schema"
)

func main() {
	path := flag.String("file", "", "CSV export to inspect")
	comma := flag.String("comma", ",", "field delimiter")
	flag.Parse()

	if *path == "" {
		log.Fatal("usage: sheetprobe -file responses.csv")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	if c := []rune(*comma); len(c) > 0 {
		cr.Comma = c[0]
	}
	header, err := cr.Read()
	if err != nil {
		log.Fatalf("read header: %v", err)
	}

	found := make(map[string]bool)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Header", "Field", "Status"})
	for i, raw := range header {
		h := strings.TrimSpace(raw)
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		if canonical, ok := schema.FieldMap[h]; ok {
			found[canonical] = true
			table.Append([]string{truncate(h, 60), canonical, "mapped"})
		} else {
			table.Append([]string{truncate(h, 60), "", "unmapped"})
		}
	}
	table.Render()

	var missing []string
	for _, req := range schema.RequiredFields {
		if !found[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		log.Printf("missing required fields: %s", strings.Join(missing, ", "))
		os.Exit(1)
	}
	log.Print("all required fields mapped")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
