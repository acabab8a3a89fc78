// Package xlsx implements a spreadsheet parser over the first worksheet of
// an .xlsx workbook. It mirrors the CSV parser's Options surface so the two
// are interchangeable behind the parser.Parser interface.
package xlsx

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"coursedemand/pkg/records"
)

// Options configures the XLSX parser.
type Options struct {
	// HasHeader indicates whether the first row contains column headers.
	HasHeader bool

	// Sheet selects the worksheet by name. Empty means the first sheet.
	Sheet string

	// TrimSpace trims leading/trailing spaces from each cell value.
	TrimSpace bool

	// HeaderMap maps source header names to canonical keys; headers not in
	// the map are slugged (lowercase, spaces to underscores).
	HeaderMap map[string]string
}

// Parser parses .xlsx input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct {
	opt     Options
	headers []string
}

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse reads the workbook from r and returns the rows of the selected
// worksheet. Excelize trims trailing empty cells per row, so short rows are
// padded to the header width rather than skipped; rows wider than the header
// are skipped and counted like the CSV parser does.
func (p *Parser) Parse(r io.Reader) ([]records.Record, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := p.opt.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	p.headers = nil
	if len(rows) == 0 {
		return nil, 0, nil
	}

	var headers []string
	body := rows
	if p.opt.HasHeader {
		headers = normalizeHeaders(rows[0], p.opt)
		p.headers = headers
		body = rows[1:]
	}

	var out []records.Record
	var skipped int
	for line, row := range body {
		if len(headers) > 0 && len(row) > len(headers) {
			if skipped < logSkipLimit {
				log.Printf("Skipping row %d: incorrect number of fields (expected %d, got %d)",
					line+1, len(headers), len(row))
			}
			skipped++
			continue
		}

		width := len(row)
		if len(headers) > 0 {
			width = len(headers)
		}
		rec := make(records.Record, width)
		for i := 0; i < width; i++ {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[keyFor(i, headers)] = emptyToNil(val)
		}
		out = append(out, rec)
	}

	return out, skipped, nil
}

// Headers returns the canonical header names read during the last Parse.
func (p *Parser) Headers() []string { return p.headers }

const logSkipLimit = 10

func keyFor(idx int, headers []string) string {
	if idx < len(headers) && headers[idx] != "" {
		return headers[idx]
	}
	return fmt.Sprintf("col_%d", idx)
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func normalizeHeaders(h []string, opt Options) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if opt.HeaderMap != nil {
			if m, ok := opt.HeaderMap[c]; ok {
				res[i] = m
				continue
			}
		}
		res[i] = strings.ReplaceAll(strings.ToLower(c), " ", "_")
	}
	return res
}
