// Command demand loads a course-preference survey export, reshapes it, and
// reports aggregate demand: on the console by default, or as an interactive
// dashboard with -serve.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"coursedemand/internal/config"
	"coursedemand/internal/datasource"
	"coursedemand/internal/datasource/file"
	"coursedemand/internal/datasource/sheet"
	"coursedemand/internal/metrics"
	"coursedemand/internal/metrics/datadog"
	"coursedemand/internal/metrics/prompush"
	"coursedemand/internal/parser"
	csvparser "coursedemand/internal/parser/csv"
	"coursedemand/internal/parser/xlsx"
	"coursedemand/internal/report"
	"coursedemand/internal/schema"
	"coursedemand/internal/webui"
)

// main is the entry point for the reporting binary. It loads the run config,
// optionally initializes a metrics backend, ingests the dataset once, and
// either prints the report or serves the dashboard.
func main() {
	var (
		cfgPath           string
		metricsBackendFlg string
		pushGatewayURLFlg string
		statsdAddrFlg     string
		serveFlg          string
		validate          bool
	)

	flag.StringVar(&cfgPath, "config", "configs/run.sample.json", "run config JSON path")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend to use (pushgateway, datadog, none; empty falls back to METRICS_BACKEND)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.StringVar(&statsdAddrFlg, "statsd-addr", "", "DogStatsD address (overrides env STATSD_ADDR)")
	flag.StringVar(&serveFlg, "serve", "", "serve the dashboard on this address (overrides config serve.addr)")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	// Environment first: the sheet connection (SHEET_ID, SHEET_WORKSHEET)
	// lives in .env or the process environment, never in the run file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	f, err := os.Open(cfgPath)
	if err != nil {
		fatalf("open config: %v", err)
	}
	defer f.Close()

	var run config.Run
	if err := json.NewDecoder(f).Decode(&run); err != nil {
		fatalf("decode config: %v", err)
	}

	issues := config.Validate(run)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		log.Printf("Configuration is invalid: %v", cfgPath)
		os.Exit(1)
	}
	if validate {
		log.Printf("Configuration is valid: %v", cfgPath)
		os.Exit(0)
	}

	job := run.Job
	if job == "" {
		job = "coursedemand"
	}

	setupMetrics(job, metricsBackendFlg, pushGatewayURLFlg, statsdAddrFlg, *verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := buildSource(run)
	if err != nil {
		fatalf("source: %v", err)
	}
	rc, err := src.Open(ctx)
	if err != nil {
		fatalf("open dataset: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		fatalf("read dataset: %v", err)
	}

	session := report.NewSession(job)
	if err := session.Load(data, buildParser(run)); err != nil {
		fatalf("load dataset: %v", err)
	}
	if *verbose {
		log.Printf("dataset loaded: %d long rows", len(session.Long()))
	}

	addr := serveFlg
	if addr == "" {
		addr = run.Serve.Addr
	}
	filter := report.Filter{
		Course: run.Report.Course,
		Year:   run.Report.Year,
		Choice: run.Report.Choice,
	}

	if addr == "" {
		printReport(session.Report(filter))
		return
	}

	srv := webui.NewServer(webui.Config{Addr: addr}, session)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("dashboard listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// On SIGINT/SIGTERM drain in-flight requests, then unblock the
		// serve goroutine via ErrServerClosed.
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		fatalf("serve: %v", err)
	}
}

// buildSource constructs the configured datasource.
func buildSource(run config.Run) (datasource.Source, error) {
	switch run.Source.Kind {
	case "file":
		return file.NewLocal(run.Source.File.Path), nil
	case "sheet":
		worksheet := run.Source.Sheet.Worksheet
		if worksheet == "" {
			worksheet = os.Getenv("SHEET_WORKSHEET")
		}
		return sheet.New(sheet.Config{
			SpreadsheetID: os.Getenv("SHEET_ID"),
			Worksheet:     worksheet,
		})
	default:
		return nil, fmt.Errorf("unknown source kind %q", run.Source.Kind)
	}
}

// buildParser constructs the configured parser with the survey field map
// wired in, so records come out keyed by canonical names.
func buildParser(run config.Run) parser.Parser {
	opts := run.Parser.Options
	switch run.Parser.Kind {
	case "xlsx":
		return xlsx.NewParser(xlsx.Options{
			HasHeader: opts.Bool("has_header", true),
			Sheet:     opts.String("sheet", ""),
			TrimSpace: opts.Bool("trim_space", true),
			HeaderMap: schema.FieldMap,
		})
	default: // csv
		comma := ','
		if c := opts.String("comma", ","); c != "" {
			comma = []rune(c)[0]
		}
		return csvparser.NewParser(csvparser.Options{
			HasHeader: opts.Bool("has_header", true),
			Comma:     comma,
			TrimSpace: opts.Bool("trim_space", true),
			HeaderMap: schema.FieldMap,
		})
	}
}

// setupMetrics selects the metrics backend: flag → env → disabled.
func setupMetrics(job, backendName, gwURLFlag, statsdFlag string, verbose bool) {
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	switch backendName {
	case "pushgateway":
		gwURL := gwURLFlag
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend(job, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
			return
		}
		log.Printf("metrics: url=%v, backend=%v, job_name=%v", gwURL, backendName, job)
		metrics.SetBackend(b)

	case "datadog":
		addr := statsdFlag
		if addr == "" {
			addr = os.Getenv("STATSD_ADDR")
		}
		if addr == "" {
			addr = "127.0.0.1:8125"
		}
		b, err := datadog.NewBackend(datadog.Config{Addr: addr, Namespace: "coursedemand."})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
			return
		}
		log.Printf("metrics: addr=%v, backend=%v, job_name=%v", addr, backendName, job)
		metrics.SetBackend(b)

	case "", "none":
		if verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(1)
}
