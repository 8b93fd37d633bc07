package visualcrossing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// Client implements domain.WeatherProvider using the Visual Crossing
// Timeline API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Visual Crossing timeline client.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline",
		logger:  logger,
	}
}

// FetchTimeline retrieves the forecast timeline for a coordinate: current
// conditions, the multi-day outlook with hourly detail, and active alerts.
// Units are US customary; pressure arrives in millibars regardless.
func (c *Client) FetchTimeline(ctx context.Context, coord domain.Coordinate) (domain.Timeline, error) {
	params := url.Values{
		"unitGroup": {"us"},
		"key":       {c.apiKey},
		"include":   {"current,days,hours,alerts"},
	}

	u := fmt.Sprintf("%s/%.4f,%.4f?%s", c.baseURL, coord.Lat, coord.Lon, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("timeline request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Timeline{}, fmt.Errorf("visual crossing API error: status %d: %s", resp.StatusCode, body)
	}

	var tl domain.Timeline
	if err := json.NewDecoder(resp.Body).Decode(&tl); err != nil {
		return domain.Timeline{}, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("timeline fetched",
		"resolved_address", tl.ResolvedAddress,
		"days", len(tl.Days),
		"alerts", len(tl.Alerts),
	)
	return tl, nil
}
