package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/observability"
	"github.com/couchcryptid/weather-report-service/internal/report"
)

// ReportBuilder produces a full weather report for a ZIP code.
type ReportBuilder interface {
	BuildReport(ctx context.Context, zip string) (domain.Report, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the weather report endpoint plus health, readiness, and
// metrics routes.
type Server struct {
	httpServer *http.Server
	builder    ReportBuilder
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /weather, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, builder ReportBuilder, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		builder: builder,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("POST /weather", s.handleWeather)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type weatherRequest struct {
	ZIP string `json:"zip"`
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req weatherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RequestsTotal.WithLabelValues("bad_zip").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ZIP required"})
		return
	}

	rep, err := s.builder.BuildReport(r.Context(), req.ZIP)
	switch {
	case err == nil:
		s.metrics.RequestsTotal.WithLabelValues("ok").Inc()
		s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
		writeJSON(w, http.StatusOK, rep)
	case errors.Is(err, report.ErrZIPRequired):
		s.metrics.RequestsTotal.WithLabelValues("bad_zip").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ZIP required"})
	case errors.Is(err, report.ErrInvalidZIP):
		s.metrics.RequestsTotal.WithLabelValues("zip_not_found").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid ZIP"})
	default:
		s.logger.Error("report build failed", "zip", req.ZIP, "error", err)
		s.metrics.RequestsTotal.WithLabelValues("upstream_error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
