// Package config defines the canonical, JSON-serializable configuration
// model for a reporting run. It is intentionally small, explicit, and
// dependency-free so that run files can be loaded from disk and passed
// through the program without additional glue code.
//
// Design goals:
//
//  1. Stability: changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: field names in Go mirror the JSON structure of run files.
//  3. Minimalism: no third-party config libraries; decoding is performed by
//     the standard library, with a light Options helper for typed access.
//
// Example (trimmed):
//
//	{
//	  "job":    "summer-2025",
//	  "source": { "kind": "file", "file": { "path": "responses.csv" } },
//	  "parser": { "kind": "csv", "options": { "has_header": true } },
//	  "report": { "course": "", "year": 0, "choice": "" },
//	  "serve":  { "addr": ":8080" }
//	}
package config

import "encoding/json"

// Run describes one reporting run: where the survey export comes from, how
// it is parsed, and the default filter selection.
type Run struct {
	// Job labels the run in logs and metrics.
	Job string `json:"job"`

	// Source describes where input data comes from.
	Source Source `json:"source"`

	// Parser configures how raw bytes are turned into records.
	Parser Parser `json:"parser"`

	// Report holds the initial filter selection.
	Report Report `json:"report"`

	// Serve configures the optional dashboard server.
	Serve Serve `json:"serve"`
}

// Source identifies the data source.
type Source struct {
	// Kind selects the source implementation: "file" or "sheet".
	Kind string `json:"kind"`

	// File carries options for the "file" source kind.
	File SourceFile `json:"file"`

	// Sheet carries options for the "sheet" source kind. The spreadsheet id
	// itself comes from the environment (SHEET_ID / SHEET_WORKSHEET), never
	// from the run file.
	Sheet SourceSheet `json:"sheet"`
}

// SourceFile holds configuration for the "file" source kind.
type SourceFile struct {
	// Path is the local filesystem path to the input file.
	Path string `json:"path"`
}

// SourceSheet holds configuration for the "sheet" source kind.
type SourceSheet struct {
	// Worksheet overrides the SHEET_WORKSHEET environment value when set.
	Worksheet string `json:"worksheet"`
}

// Parser selects how to parse the raw source into logical rows/columns.
type Parser struct {
	// Kind selects the parser implementation: "csv" or "xlsx".
	Kind string `json:"kind"`

	// Options is a free-form map interpreted by the parser implementation.
	// For CSV, typical keys include:
	//   has_header (bool), comma (string), trim_space (bool)
	// For XLSX:
	//   has_header (bool), sheet (string), trim_space (bool)
	Options Options `json:"options"`
}

// Report holds the initial filter selection applied before any interaction.
type Report struct {
	Course string `json:"course"`
	Year   int    `json:"year"`
	Choice string `json:"choice"`
}

// Serve configures the dashboard HTTP server.
type Serve struct {
	// Addr is the listen address, e.g. ":8080". Empty means console output
	// only.
	Addr string `json:"addr"`
}

// Options is a small helper to fetch typed values from arbitrary JSON maps
// without introducing third-party configuration libraries. It purposefully
// performs only minimal type coercion and returns provided defaults when a
// key is absent or of an unexpected type.
type Options map[string]any

// String returns the string value for key or def if key is missing or not a string.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the bool value for key or def if key is missing or not a bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Int returns the int value for key or def. JSON numbers decode as float64;
// both float64 and int are accepted.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}
