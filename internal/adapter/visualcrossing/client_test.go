package visualcrossing

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

const testKey = "test-key"

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

const timelinePayload = `{
	"resolvedAddress": "Saratoga Springs, NY, United States",
	"timezone": "America/New_York",
	"currentConditions": {
		"datetime": "09:00:00",
		"temp": 30.4,
		"feelslike": 24.6,
		"conditions": "Snow, Overcast",
		"windspeed": 8.3,
		"windgust": 15.7,
		"winddir": 202.5,
		"pressure": 1015.2
	},
	"days": [
		{
			"datetime": "2024-01-25",
			"tempmax": 33.1,
			"tempmin": 21.4,
			"winddir": 200,
			"pressure": 1013.0,
			"preciptype": ["snow"],
			"sunrise": "07:15:49",
			"sunset": "17:45:10",
			"hours": [
				{
					"datetime": "02:00:00",
					"temp": 28.0,
					"snow": 0.4,
					"preciptype": "snow",
					"cloudcover": 95,
					"conditions": "Snow, Overcast"
				}
			]
		}
	],
	"alerts": [
		{"event": "Winter Storm Warning", "headline": "Winter Storm Warning until 7 PM EST"}
	]
}`

func TestClient_FetchTimeline_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/43.0831,-73.7846", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("unitGroup"))
		assert.Equal(t, testKey, r.URL.Query().Get("key"))
		assert.Equal(t, "current,days,hours,alerts", r.URL.Query().Get("include"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(timelinePayload))
	}))
	defer srv.Close()

	tl, err := testClient(srv.URL).FetchTimeline(context.Background(), domain.Coordinate{Lat: 43.0831, Lon: -73.7846})
	require.NoError(t, err)

	assert.Equal(t, "Saratoga Springs, NY, United States", tl.ResolvedAddress)
	assert.Equal(t, 30.4, tl.CurrentConditions.Temp)

	require.Len(t, tl.Days, 1)
	day := tl.Days[0]
	assert.Equal(t, "2024-01-25", day.Date)
	assert.Equal(t, domain.PrecipTypes{"snow"}, day.PrecipType)

	// Hour-level preciptype arrives as a bare string here and must normalize
	// the same way as the array form.
	require.Len(t, day.Hours, 1)
	assert.Equal(t, domain.PrecipTypes{"snow"}, day.Hours[0].PrecipType)
	require.NotNil(t, day.Hours[0].CloudCover)
	assert.Equal(t, float64(95), *day.Hours[0].CloudCover)

	require.Len(t, tl.Alerts, 1)
	assert.Equal(t, "Winter Storm Warning", tl.Alerts[0].Event)
}

func TestClient_FetchTimeline_CoordinateFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/40.0000,-75.1235", r.URL.Path)
		_, _ = w.Write([]byte(`{"days":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchTimeline(context.Background(), domain.Coordinate{Lat: 40, Lon: -75.12346})
	require.NoError(t, err)
}

func TestClient_FetchTimeline_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchTimeline(context.Background(), domain.Coordinate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_FetchTimeline_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"days":`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchTimeline(context.Background(), domain.Coordinate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
