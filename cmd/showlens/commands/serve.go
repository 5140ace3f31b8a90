package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/showlens/showlens/internal/config"
	"github.com/showlens/showlens/internal/observability"
	"github.com/showlens/showlens/pkg/report"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	opDashboard = "dashboard"
	opExport    = "export"
)

// ServeCommand holds configuration and dependencies for the serve command.
type ServeCommand struct {
	configPath string
	addr       string

	deps Dependencies
}

// NewServeCommand creates the serve command: an HTTP server exposing
// the dashboard, a CSV download, and Prometheus metrics. The series
// are recomputed from the record source on every request; nothing is
// cached or persisted.
func NewServeCommand() *cobra.Command {
	return newServeCommandWithDeps(defaultDependencies())
}

func newServeCommandWithDeps(deps Dependencies) *cobra.Command {
	sc := &ServeCommand{deps: deps}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: "Serve the series production dashboard over HTTP.\n\n" +
			"Routes:\n" +
			"  /            interactive dashboard\n" +
			"  /export.csv  CSV download\n" +
			"  /metrics     Prometheus scrape endpoint",
		Args: cobra.NoArgs,
		RunE: sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Config file path (default: .showlens.yaml in CWD or $HOME)")
	cmd.Flags().StringVar(&sc.addr, "addr", "", "Listen address (overrides serve.addr)")

	return cmd
}

func (sc *ServeCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := sc.deps.LoadConfig(sc.configPath)
	if err != nil {
		return err
	}

	if sc.addr != "" {
		cfg.Serve.Addr = sc.addr
	}

	kind, err := report.ParseChartKind(cfg.Chart.Kind)
	if err != nil {
		return err
	}

	metrics, metricsHandler, err := observability.Setup()
	if err != nil {
		return err
	}

	srv := &dashboardServer{
		cfg:     cfg,
		deps:    sc.deps,
		kind:    kind,
		metrics: metrics,
		logger:  slog.Default(),
	}

	httpServer := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           srv.routes(metricsHandler),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "listening on %s\n", cfg.Serve.Addr)

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", cfg.Serve.Addr, err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// dashboardServer recomputes the aligned frame on every request and
// renders it in the format the route asks for.
type dashboardServer struct {
	cfg     *config.Config
	deps    Dependencies
	kind    report.ChartKind
	metrics *observability.REDMetrics
	logger  *slog.Logger
}

func (s *dashboardServer) routes(metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.instrument(opDashboard, s.handleDashboard))
	mux.HandleFunc("GET /export.csv", s.instrument(opExport, s.handleExport))
	mux.Handle("GET /metrics", metricsHandler)

	return mux
}

// instrument wraps a handler with RED metrics collection. Handlers
// render fully into memory before writing, so on error the client
// receives the error page and nothing else.
func (s *dashboardServer) instrument(op string, handler func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		done := s.metrics.TrackInflight(r.Context(), op)
		defer done()

		startedAt := time.Now()

		err := handler(w, r)

		status := observability.StatusOK
		if err != nil {
			status = observability.StatusError

			s.logger.Warn("request failed", "op", op, "error", err)
			http.Error(w, "no data available: "+err.Error(), http.StatusBadGateway)
		}

		s.metrics.RecordRequest(r.Context(), op, status, time.Since(startedAt))
	}
}

func (s *dashboardServer) handleDashboard(w http.ResponseWriter, r *http.Request) error {
	frame, fetched, err := computeFrame(r.Context(), s.cfg, s.deps)
	if err != nil {
		return err
	}

	s.metrics.CountRecords(r.Context(), fetched)

	var buf bytes.Buffer

	err = report.WriteDashboard(&buf, frame, s.kind)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}

func (s *dashboardServer) handleExport(w http.ResponseWriter, r *http.Request) error {
	frame, fetched, err := computeFrame(r.Context(), s.cfg, s.deps)
	if err != nil {
		return err
	}

	s.metrics.CountRecords(r.Context(), fetched)

	var buf bytes.Buffer

	err = report.WriteCSV(&buf, frame)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="export.csv"`)

	_, err = w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}
