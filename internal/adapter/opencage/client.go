package opencage

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

// Client implements domain.Geocoder using the OpenCage Geocoding API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an OpenCage geocoding client.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.opencagedata.com/geocode/v1/json",
		logger:  logger,
	}
}

// GeocodePostal resolves a US postal code to coordinates. A ZIP with no match
// returns found=false and no error.
func (c *Client) GeocodePostal(ctx context.Context, postalCode string) (domain.Coordinate, bool, error) {
	params := url.Values{
		"q":     {fmt.Sprintf("postalcode:%s, USA", postalCode)},
		"key":   {c.apiKey},
		"limit": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Coordinate{}, false, fmt.Errorf("opencage API error: status %d: %s", resp.StatusCode, body)
	}

	var ocResp response
	if err := json.NewDecoder(resp.Body).Decode(&ocResp); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("decode response: %w", err)
	}

	if len(ocResp.Results) == 0 {
		c.logger.Debug("no geocoding match", "postal_code", postalCode)
		return domain.Coordinate{}, false, nil
	}

	g := ocResp.Results[0].Geometry
	return domain.Coordinate{Lat: g.Lat, Lon: g.Lng}, true, nil
}

// OpenCage API response types.

type response struct {
	Results []result `json:"results"`
}

type result struct {
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
