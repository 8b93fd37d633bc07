package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecipTypesUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want PrecipTypes
	}{
		{name: "array", raw: `["Rain","Snow"]`, want: PrecipTypes{"rain", "snow"}},
		{name: "bare string", raw: `"Snow"`, want: PrecipTypes{"snow"}},
		{name: "null", raw: `null`, want: nil},
		{name: "empty array", raw: `[]`, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got PrecipTypes
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrecipTypesHas(t *testing.T) {
	p := PrecipTypes{"rain", "snow"}

	assert.True(t, p.Has("snow"))
	assert.False(t, p.Has("ice"))
	assert.False(t, PrecipTypes(nil).Has("rain"))
}

func TestHourRecordDecode(t *testing.T) {
	raw := `{
		"datetime": "14:00:00",
		"temp": 28.4,
		"feelslike": 21.0,
		"windspeed": 12.1,
		"windgust": 25.3,
		"winddir": 270,
		"pressure": 1008.2,
		"cloudcover": null,
		"visibility": 0.4,
		"precip": 0.12,
		"preciptype": "snow",
		"snow": 0.3,
		"conditions": "Snow, Overcast"
	}`

	var h HourRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &h))

	assert.Equal(t, "14:00:00", h.Time)
	assert.Equal(t, 28.4, h.Temp)
	assert.Nil(t, h.CloudCover)
	require.NotNil(t, h.Visibility)
	assert.Equal(t, 0.4, *h.Visibility)
	assert.Equal(t, PrecipTypes{"snow"}, h.PrecipType)
	assert.Equal(t, 0.3, h.Snow)
}
