package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// Timeline is the one-call upstream payload: current conditions plus the
// daily/hourly forecast and any active alerts for a coordinate.
type Timeline struct {
	ResolvedAddress   string            `json:"resolvedAddress"`
	Timezone          string            `json:"timezone"`
	CurrentConditions CurrentConditions `json:"currentConditions"`
	Days              []DayRecord       `json:"days"`
	Alerts            []Alert           `json:"alerts"`
}

// CurrentConditions is the instantaneous snapshot. Same field conventions as
// HourRecord; it differs only in representing "right now" rather than a
// scheduled hour.
type CurrentConditions struct {
	Time       string  `json:"datetime"`
	Temp       float64 `json:"temp"`
	FeelsLike  float64 `json:"feelslike"`
	Conditions string  `json:"conditions"`
	WindSpeed  float64 `json:"windspeed"`
	WindGust   float64 `json:"windgust"`
	WindDir    float64 `json:"winddir"`
	Pressure   float64 `json:"pressure"` // millibars
}

// DayRecord is one calendar day with its hour sequence in non-decreasing
// time order. Hours may be fewer than 24 for partial data; the ordering is
// trusted from upstream, not enforced here.
type DayRecord struct {
	Date       string       `json:"datetime"` // YYYY-MM-DD, local to the location
	TempMax    float64      `json:"tempmax"`
	TempMin    float64      `json:"tempmin"`
	Conditions string       `json:"conditions"`
	WindDir    float64      `json:"winddir"`
	Pressure   float64      `json:"pressure"`
	PrecipType PrecipTypes  `json:"preciptype"`
	Sunrise    string       `json:"sunrise"` // HH:MM:SS, empty when unreported
	Sunset     string       `json:"sunset"`
	Hours      []HourRecord `json:"hours"`
}

// HourRecord is one hour of observed or forecast data. Immutable once
// decoded; downstream code only reads it and projects it into output shapes.
type HourRecord struct {
	Time       string      `json:"datetime"` // HH:MM:SS local
	Temp       float64     `json:"temp"`
	FeelsLike  float64     `json:"feelslike"`
	WindSpeed  float64     `json:"windspeed"`
	WindGust   float64     `json:"windgust"`
	WindDir    float64     `json:"winddir"`
	Pressure   float64     `json:"pressure"`   // millibars
	CloudCover *float64    `json:"cloudcover"` // percent, nil when unreported
	Visibility *float64    `json:"visibility"` // miles, nil when unreported
	Precip     float64     `json:"precip"`     // inches
	PrecipType PrecipTypes `json:"preciptype"`
	Snow       float64     `json:"snow"` // inches
	Conditions string      `json:"conditions"`
}

// Alert is a pass-through severe weather alert. No transformation beyond
// field selection; absent fields stay empty.
type Alert struct {
	Event       string `json:"event"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Onset       string `json:"onset"`
	Ends        string `json:"ends"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	Certainty   string `json:"certainty"`
	Areas       string `json:"areas"`
}

// PrecipTypes is the canonical precipitation-type set. Upstream supplies a
// JSON array, a bare string, or null; all three decode into a lowercase
// slice so classification rules never special-case the representation.
type PrecipTypes []string

func (p *PrecipTypes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}

	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*p = normalizePrecipTypes(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*p = normalizePrecipTypes([]string{single})
	return nil
}

func normalizePrecipTypes(values []string) PrecipTypes {
	out := make(PrecipTypes, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Has reports whether the set contains the given type.
func (p PrecipTypes) Has(t string) bool {
	for _, v := range p {
		if v == t {
			return true
		}
	}
	return false
}

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a postal code to coordinates.
type Geocoder interface {
	// GeocodePostal returns the best-match coordinate for a postal code.
	// found is false when the provider has no match for the code.
	GeocodePostal(ctx context.Context, postalCode string) (coord Coordinate, found bool, err error)
}

// WeatherProvider fetches the full timeline for a coordinate.
type WeatherProvider interface {
	FetchTimeline(ctx context.Context, coord Coordinate) (Timeline, error)
}
