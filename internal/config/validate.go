// This file adds a lightweight linter/validator for Run values. It performs
// static checks over a decoded Run and returns a list of issues (errors and
// warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Run.
//
// Path is a dotted path into the config (e.g. "source.kind",
// "parser.options.comma"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation / linting of a Run.
//
// It does not mutate the config. Callers may decide whether to treat
// warnings as fatal or not.
func Validate(r Run) []Issue {
	var issues []Issue

	if strings.TrimSpace(r.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "job",
			Message:  "job is empty; logs and metrics will use the default label",
		})
	}

	switch r.Source.Kind {
	case "file":
		if strings.TrimSpace(r.Source.File.Path) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "source.file.path",
				Message:  "file source requires a path",
			})
		}
	case "sheet":
		// Spreadsheet id comes from the environment; nothing to check here.
	case "":
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.kind",
			Message:  "source kind is required (\"file\" or \"sheet\")",
		})
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.kind",
			Message:  fmt.Sprintf("unknown source kind %q", r.Source.Kind),
		})
	}

	switch r.Parser.Kind {
	case "csv", "":
		if c := r.Parser.Options.String("comma", ","); len([]rune(c)) != 1 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "parser.options.comma",
				Message:  fmt.Sprintf("delimiter must be a single character, got %q", c),
			})
		}
	case "xlsx":
		if r.Source.Kind == "sheet" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "parser.kind",
				Message:  "sheet source exports CSV; use the csv parser",
			})
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "parser.kind",
			Message:  fmt.Sprintf("unknown parser kind %q", r.Parser.Kind),
		})
	}

	if !r.Parser.Options.Bool("has_header", true) {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "parser.options.has_header",
			Message:  "survey column recognition needs the header row; synthesized col_N names will not match the field map",
		})
	}

	if r.Report.Year < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "report.year",
			Message:  "enrollment year filter must not be negative",
		})
	}

	return issues
}
