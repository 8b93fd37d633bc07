// Package report orchestrates one weather report request: geocode the ZIP,
// fetch the timeline, and assemble the response.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/observability"
)

// ErrZIPRequired is returned when the request carries no ZIP code.
var ErrZIPRequired = errors.New("ZIP required")

// ErrInvalidZIP is returned when the geocoder finds no match for the ZIP.
var ErrInvalidZIP = errors.New("Invalid ZIP")

// Service builds weather reports from the two upstream providers. It holds no
// per-request state; every report is derived fresh from upstream responses.
type Service struct {
	geocoder domain.Geocoder
	weather  domain.WeatherProvider
	logger   *slog.Logger
	metrics  *observability.Metrics

	outlookDays int
	gapHours    int
}

// NewService creates a Service with the given providers and observability.
func NewService(g domain.Geocoder, w domain.WeatherProvider, logger *slog.Logger, metrics *observability.Metrics, outlookDays, gapHours int) *Service {
	return &Service{
		geocoder:    g,
		weather:     w,
		logger:      logger,
		metrics:     metrics,
		outlookDays: outlookDays,
		gapHours:    gapHours,
	}
}

// CheckReadiness returns nil when both upstream providers are wired.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.geocoder == nil {
		return errors.New("geocoder is not configured")
	}
	if s.weather == nil {
		return errors.New("weather provider is not configured")
	}
	return nil
}

// BuildReport resolves the ZIP to coordinates, fetches the forecast timeline,
// and assembles the full report. Returns ErrZIPRequired for a blank ZIP and
// ErrInvalidZIP when no location matches; any other failure is an upstream or
// assembly error.
func (s *Service) BuildReport(ctx context.Context, zip string) (domain.Report, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return domain.Report{}, ErrZIPRequired
	}

	start := time.Now()
	coord, found, err := s.geocoder.GeocodePostal(ctx, zip)
	s.metrics.UpstreamRequestDuration.WithLabelValues("opencage").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamErrors.WithLabelValues("opencage").Inc()
		return domain.Report{}, fmt.Errorf("geocode %q: %w", zip, err)
	}
	if !found {
		return domain.Report{}, ErrInvalidZIP
	}
	s.logger.Debug("zip resolved", "zip", zip, "lat", coord.Lat, "lon", coord.Lon)

	start = time.Now()
	tl, err := s.weather.FetchTimeline(ctx, coord)
	s.metrics.UpstreamRequestDuration.WithLabelValues("visualcrossing").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamErrors.WithLabelValues("visualcrossing").Inc()
		return domain.Report{}, fmt.Errorf("fetch timeline for %q: %w", zip, err)
	}

	rep, err := domain.AssembleReport(tl, s.outlookDays, s.gapHours)
	if err != nil {
		return domain.Report{}, fmt.Errorf("assemble report for %q: %w", zip, err)
	}

	if rep.Storm != nil {
		s.metrics.StormWindowsDetected.Inc()
	}
	s.metrics.AlertsReturned.Observe(float64(len(rep.Alerts)))

	s.logger.Info("report built",
		"zip", zip,
		"resolved_address", tl.ResolvedAddress,
		"alerts", len(rep.Alerts),
		"storm", rep.Storm != nil,
	)
	return rep, nil
}
