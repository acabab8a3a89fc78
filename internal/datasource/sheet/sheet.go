// Package sheet implements the remote spreadsheet source: the named
// connection the dashboard uses when no file is uploaded. It fetches the
// spreadsheet's CSV export over HTTP; credentials and the spreadsheet
// identity come from the environment (see cmd/demand), not from code.
package sheet

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"coursedemand/internal/datasource/httpds"
)

// Config identifies the remote spreadsheet.
type Config struct {
	// SpreadsheetID is the document id from the sheet's URL.
	SpreadsheetID string

	// Worksheet is the tab holding the form responses,
	// e.g. "Respostas ao formulário 1".
	Worksheet string

	// Client is the HTTP client used for the fetch. When nil a default
	// retrying client is constructed.
	Client *httpds.Client
}

// Source fetches the worksheet as CSV.
type Source struct {
	cfg Config
}

// New returns a Source for the given connection config.
func New(cfg Config) (*Source, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheet: spreadsheet id is required")
	}
	if cfg.Client == nil {
		cfg.Client = httpds.NewClient(httpds.Config{})
	}
	return &Source{cfg: cfg}, nil
}

// ExportURL is the CSV export endpoint for the configured worksheet.
func (s *Source) ExportURL() string {
	u := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv",
		url.PathEscape(s.cfg.SpreadsheetID))
	if s.cfg.Worksheet != "" {
		u += "&sheet=" + url.QueryEscape(s.cfg.Worksheet)
	}
	return u
}

// Open fetches the worksheet and returns its CSV bytes as a stream. Fetch
// failures are wrapped with the export URL's target so the UI can tell the
// user which connection failed.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := s.cfg.Client.Get(ctx, s.ExportURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch worksheet %q: %w", s.cfg.Worksheet, err)
	}
	if resp.StatusCode != 200 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch worksheet %q: status %s", s.cfg.Worksheet, resp.Status)
	}
	return resp.Body, nil
}
