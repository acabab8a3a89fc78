package sheet

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"coursedemand/internal/datasource/httpds"
)

func TestNewRequiresID(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New() without spreadsheet id did not fail")
	}
	if _, err := New(Config{SpreadsheetID: "abc123"}); err != nil {
		t.Errorf("New() error = %v", err)
	}
}

func TestExportURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "whole_document",
			cfg:  Config{SpreadsheetID: "abc123"},
			want: "https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:csv",
		},
		{
			name: "named_worksheet_escaped",
			cfg:  Config{SpreadsheetID: "abc123", Worksheet: "Respostas ao formulário 1"},
			want: "https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:csv&sheet=" +
				url.QueryEscape("Respostas ao formulário 1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := s.ExportURL(); got != tt.want {
				t.Errorf("ExportURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

// rewriteTransport redirects every request to the test server regardless of
// the request URL, so Open can be exercised against its real export URL.
type rewriteTransport struct{ target *url.URL }

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func testClient(t *testing.T, h http.HandlerFunc) *httpds.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server url: %v", err)
	}
	return httpds.NewClient(httpds.Config{Transport: rewriteTransport{target: u}, MaxRetries: 0})
}

func TestOpen(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sheet"); got != "respostas" {
			t.Errorf("sheet param = %q, want respostas", got)
		}
		io.WriteString(w, "a,b\n1,2\n")
	})

	s, err := New(Config{SpreadsheetID: "abc123", Worksheet: "respostas", Client: client})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rc, err := s.Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "a,b\n1,2\n" {
		t.Errorf("body = %q", body)
	}
}

func TestOpenNon200(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	s, err := New(Config{SpreadsheetID: "abc123", Worksheet: "respostas", Client: client})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = s.Open(context.Background())
	if err == nil {
		t.Fatal("Open() on 403 did not fail")
	}
	if !strings.Contains(err.Error(), "respostas") {
		t.Errorf("error %q does not name the worksheet", err)
	}
}
