// Package webui exposes the interactive dashboard: an HTML page with the
// filter form and the aggregate tables, plus a JSON API for scripts.
//
// Routes:
//
//	GET /            → dashboard with current filter selection
//	GET /api/report  → machine-friendly API, returns application/json
//
// The server renders tables only; charting stays with external collaborators.
// Empty aggregates render as a "nothing to show" notice while the other
// tables stay populated.
package webui

import (
	"context"
	_ "embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"coursedemand/internal/report"
)

// Config controls server startup.
type Config struct {
	Addr string
}

// Server wraps http.Server for convenience. It serves one session; the
// pipeline model is single-user, so no request-level locking is done beyond
// the session being read-only after load.
type Server struct {
	cfg     Config
	session *report.Session
	mux     *http.ServeMux
	srv     *http.Server
	tmpl    *template.Template
}

// NewServer constructs a Server with routes and the embedded template.
func NewServer(cfg Config, session *report.Session) *Server {
	s := &Server{
		cfg:     cfg,
		session: session,
		mux:     http.NewServeMux(),
		// Parse the embedded template at init time.
		tmpl: template.Must(template.New("index").Parse(indexHTML)),
	}
	s.routes()
	s.srv = &http.Server{Addr: cfg.Addr, Handler: s.mux}
	return s
}

// Handler returns the root handler, mostly for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe starts the HTTP server. It returns http.ErrServerClosed
// after Shutdown.
func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops the server gracefully, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/report", s.handleAPIReport)
}

// filterFrom reads the filter selection from query parameters.
func filterFrom(q map[string][]string) report.Filter {
	get := func(k string) string {
		if vs, ok := q[k]; ok && len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}
	year, _ := strconv.Atoi(get("year"))
	return report.Filter{
		Course: get("course"),
		Year:   year,
		Choice: get("choice"),
	}
}

// handleIndex renders the dashboard for the requested filter.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !s.session.Loaded() {
		http.Error(w, "no dataset loaded", http.StatusServiceUnavailable)
		return
	}

	f := filterFrom(r.URL.Query())
	rep := s.session.Report(f)

	data := struct {
		Report  report.Report
		Courses []string
		Years   []int
		Choices []string
	}{
		Report:  rep,
		Courses: s.session.Courses(),
		Years:   s.session.Years(),
		Choices: s.session.Choices(),
	}
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Println("template error:", err)
	}
}

// handleAPIReport returns the full report as JSON.
func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	if !s.session.Loaded() {
		http.Error(w, "no dataset loaded", http.StatusServiceUnavailable)
		return
	}
	rep := s.session.Report(filterFrom(r.URL.Query()))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Println("encode report:", err)
	}
}

// indexHTML is an embedded, minimal page with vanilla styling.
//
//go:embed index.tmpl.html
var indexHTML string
