package domain

import (
	"errors"
	"time"
)

// MaxOutlookDays caps the multi-day outlook length.
const MaxOutlookDays = 10

// Current is the instantaneous snapshot with today's context attached:
// high/low, sun and light window, and the pressure trend.
type Current struct {
	Temp          int           `json:"temp"`
	Feels         int           `json:"feels"`
	Conditions    string        `json:"conditions"`
	High          int           `json:"high"`
	Low           int           `json:"low"`
	WindSpeed     int           `json:"wind_speed"`
	WindGust      int           `json:"wind_gust"`
	WindDeg       float64       `json:"wind_deg"`
	WindDir       string        `json:"wind_dir"`
	Pressure      float64       `json:"pressure"` // inHg
	PressureTrend PressureTrend `json:"pressure_trend"`
	Sunrise       string        `json:"sunrise"`
	Sunset        string        `json:"sunset"`
	FirstLight    string        `json:"first_light"`
	LastLight     string        `json:"last_light"`
	Daylight      string        `json:"daylight"`
}

// Report is the assembled response for one request. All fields are derived
// fresh from a single timeline payload and discarded after serialization.
type Report struct {
	Current     Current       `json:"current"`
	Today       DaySummary    `json:"today"`
	Storm       *StormWindow  `json:"storm"`
	Alerts      []Alert       `json:"alerts"`
	Hourly      []HourSummary `json:"hourly"`
	TenDay      []DaySummary  `json:"ten_day"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// ErrEmptyTimeline is returned when the upstream payload carries no days;
// the first day is required and nothing can be assembled without it.
var ErrEmptyTimeline = errors.New("timeline has no days")

// AssembleReport builds the full report from one timeline payload.
// outlookDays is clamped to [1, MaxOutlookDays]; gapHours sets the storm
// scan's gap tolerance. The pressure trend compares the current reading
// against day[1], substituting day[0] when the timeline has a single day.
func AssembleReport(tl Timeline, outlookDays, gapHours int) (Report, error) {
	if len(tl.Days) == 0 {
		return Report{}, ErrEmptyTimeline
	}

	today := tl.Days[0]
	reference := today
	if len(tl.Days) > 1 {
		reference = tl.Days[1]
	}

	todaySummary := BuildDaySummary(today)

	cur := tl.CurrentConditions
	current := Current{
		Temp:          roundInt(cur.Temp),
		Feels:         roundInt(cur.FeelsLike),
		Conditions:    cur.Conditions,
		High:          todaySummary.High,
		Low:           todaySummary.Low,
		WindSpeed:     roundInt(cur.WindSpeed),
		WindGust:      roundInt(cur.WindGust),
		WindDeg:       cur.WindDir,
		WindDir:       DegreesToCardinal(cur.WindDir),
		Pressure:      ToInchesOfMercury(cur.Pressure),
		PressureTrend: TrendBetween(cur.Pressure, reference.Pressure),
		Sunrise:       todaySummary.Sunrise,
		Sunset:        todaySummary.Sunset,
		FirstLight:    todaySummary.FirstLight,
		LastLight:     todaySummary.LastLight,
		Daylight:      todaySummary.Daylight,
	}

	if outlookDays < 1 || outlookDays > MaxOutlookDays {
		outlookDays = MaxOutlookDays
	}
	outlook := tl.Days
	if len(outlook) > outlookDays {
		outlook = outlook[:outlookDays]
	}
	tenDay := make([]DaySummary, 0, len(outlook))
	for _, d := range outlook {
		tenDay = append(tenDay, BuildDaySummary(d))
	}

	alerts := tl.Alerts
	if alerts == nil {
		alerts = []Alert{}
	}

	return Report{
		Current:     current,
		Today:       todaySummary,
		Storm:       DetectStormWindow(tl.Days, gapHours),
		Alerts:      alerts,
		Hourly:      todaySummary.Hours,
		TenDay:      tenDay,
		GeneratedAt: clock.Now(),
	}, nil
}
