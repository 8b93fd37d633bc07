package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream API configuration.
	OpenCageAPIKey       string
	VisualCrossingAPIKey string
	GeocodeTimeout       time.Duration
	WeatherTimeout       time.Duration

	// Report tuning.
	OutlookDays   int
	StormGapHours int
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	geocodeTimeout, err := parseDuration("GEOCODE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	weatherTimeout, err := parseDuration("WEATHER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		OpenCageAPIKey:       os.Getenv("OPENCAGE_API_KEY"),
		VisualCrossingAPIKey: os.Getenv("VISUALCROSSING_API_KEY"),
		GeocodeTimeout:       geocodeTimeout,
		WeatherTimeout:       weatherTimeout,

		OutlookDays:   parseBoundedInt("OUTLOOK_DAYS", 10, 1, 10),
		StormGapHours: parseBoundedInt("STORM_GAP_HOURS", 2, 1, 24),
	}

	if cfg.OpenCageAPIKey == "" {
		return nil, errors.New("OPENCAGE_API_KEY is required")
	}
	if cfg.VisualCrossingAPIKey == "" {
		return nil, errors.New("VISUALCROSSING_API_KEY is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

// parseBoundedInt falls back to the default when the value is unset,
// unparseable, or outside [min, max].
func parseBoundedInt(key string, def, min, max int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= min && n <= max {
			return n
		}
	}
	return def
}
