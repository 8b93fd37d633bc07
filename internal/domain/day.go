package domain

import (
	"fmt"
	"math"
	"time"
)

// unknownTime marks sun/light fields that cannot be computed because the
// upstream omitted sunrise or sunset.
const unknownTime = "—"

// HourSummary is one projected entry in an hourly series: temperatures
// rounded, wind direction as a cardinal, pressure in inches of mercury.
type HourSummary struct {
	Time       string  `json:"time"` // HH:MM
	Temp       int     `json:"temp"`
	Conditions string  `json:"conditions"`
	WindSpeed  int     `json:"wind_speed"`
	WindDir    string  `json:"wind_dir"`
	WindDeg    float64 `json:"wind_deg"`
	Gust       int     `json:"gust"`
	Pressure   float64 `json:"pressure"` // inHg
}

// DaySummary is the per-day report record: resolved headline condition,
// sun/light window, moon phase, and the capped hourly series.
type DaySummary struct {
	Date       string        `json:"date"`
	High       int           `json:"high"`
	Low        int           `json:"low"`
	Conditions string        `json:"conditions"`
	WindDeg    float64       `json:"wind_deg"`
	WindDir    string        `json:"wind_dir"`
	Sunrise    string        `json:"sunrise"`
	Sunset     string        `json:"sunset"`
	FirstLight string        `json:"first_light"`
	LastLight  string        `json:"last_light"`
	Daylight   string        `json:"daylight"`
	Moon       MoonPhase     `json:"moon"`
	Hours      []HourSummary `json:"hours"`
}

// BuildDaySummary composes the per-day summary from one day record. The
// light window is sunrise−30m to sunset+30m; a missing sunrise or sunset
// yields the unknown marker rather than a computed value. The headline is
// resolved from the day's own precipitation types and hours.
func BuildDaySummary(day DayRecord) DaySummary {
	s := DaySummary{
		Date:       day.Date,
		High:       roundInt(day.TempMax),
		Low:        roundInt(day.TempMin),
		Conditions: ResolveHeadline(day),
		WindDeg:    day.WindDir,
		WindDir:    DegreesToCardinal(day.WindDir),
		Sunrise:    day.Sunrise,
		Sunset:     day.Sunset,
		FirstLight: unknownTime,
		LastLight:  unknownTime,
		Daylight:   unknownTime,
		Moon:       MoonPhaseForDate(dayDate(day.Date)),
		Hours:      BuildHourlySeries(day.Hours),
	}

	sunrise := parseClockTime(day.Date, day.Sunrise)
	sunset := parseClockTime(day.Date, day.Sunset)
	if sunrise != nil {
		s.FirstLight = sunrise.Add(-30 * time.Minute).Format("15:04")
	}
	if sunset != nil {
		s.LastLight = sunset.Add(30 * time.Minute).Format("15:04")
	}
	if sunrise != nil && sunset != nil {
		s.Daylight = formatDaylight(*sunrise, *sunset)
	}
	return s
}

// BuildHourlySeries projects hour records into summary entries, capped at 24.
func BuildHourlySeries(hours []HourRecord) []HourSummary {
	n := len(hours)
	if n > 24 {
		n = 24
	}
	series := make([]HourSummary, 0, n)
	for _, h := range hours[:n] {
		series = append(series, HourSummary{
			Time:       clockLabel(h.Time),
			Temp:       roundInt(h.Temp),
			Conditions: h.Conditions,
			WindSpeed:  roundInt(h.WindSpeed),
			WindDir:    DegreesToCardinal(h.WindDir),
			WindDeg:    h.WindDir,
			Gust:       roundInt(h.WindGust),
			Pressure:   ToInchesOfMercury(h.Pressure),
		})
	}
	return series
}

// parseClockTime combines a YYYY-MM-DD date with an HH:MM:SS clock time.
// Returns nil when the clock time is missing or malformed.
func parseClockTime(date, clock string) *time.Time {
	if clock == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", date+" "+clock)
	if err != nil {
		return nil
	}
	return &t
}

// dayDate parses a YYYY-MM-DD day date, falling back to the current date
// when upstream sends something unparseable.
func dayDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return clock.Now()
	}
	return t
}

// formatDaylight renders the sunrise→sunset span as H:MM.
func formatDaylight(sunrise, sunset time.Time) string {
	seconds := int(sunset.Sub(sunrise).Seconds())
	return fmt.Sprintf("%d:%02d", seconds/3600, seconds%3600/60)
}

// clockLabel trims HH:MM:SS to HH:MM.
func clockLabel(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
