// Command report fetches one weather report from the command line and prints
// it as indented JSON. Useful for eyeballing upstream responses without
// standing up the HTTP server.
//
// Usage:
//
//	go run ./cmd/report -zip 12866
//	go run ./cmd/report -zip 12866 -at 2024-01-25T12:00:00Z
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-report-service/internal/adapter/opencage"
	"github.com/couchcryptid/weather-report-service/internal/adapter/visualcrossing"
	"github.com/couchcryptid/weather-report-service/internal/config"
	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/observability"
	"github.com/couchcryptid/weather-report-service/internal/report"
)

func main() {
	zip := flag.String("zip", "", "US ZIP code to report on")
	at := flag.String("at", "", "fix the report clock to this RFC3339 time")
	flag.Parse()

	if *zip == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*zip, *at); code != 0 {
		os.Exit(code)
	}
}

func run(zip, at string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	if at != "" {
		fixed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -at value: %v\n", err)
			return 1
		}
		domain.SetClock(clockwork.NewFakeClockAt(fixed))
		defer domain.SetClock(nil)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	geocoder := opencage.NewClient(cfg.OpenCageAPIKey, cfg.GeocodeTimeout, logger)
	weather := visualcrossing.NewClient(cfg.VisualCrossingAPIKey, cfg.WeatherTimeout, logger)
	svc := report.NewService(geocoder, weather, logger, metrics, cfg.OutlookDays, cfg.StormGapHours)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GeocodeTimeout+cfg.WeatherTimeout)
	defer cancel()

	rep, err := svc.BuildReport(ctx, zip)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build report: %v\n", err)
		return 1
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}
