package domain

import (
	"math"
	"strings"
)

// StormWindow summarizes one contiguous snow episode found in the scanned
// hour sequence. Absent (nil) when no hour qualifies.
type StormWindow struct {
	Type  string  `json:"type"`
	Start string  `json:"start"` // "YYYY-MM-DD HH:MM:SS" local
	End   string  `json:"end"`
	Total float64 `json:"total"` // accumulated snowfall, inches, 1 decimal
}

// taggedHour pairs an hour with the calendar date of its source day so the
// window carries full timestamps across the midnight boundary.
type taggedHour struct {
	date string
	hour HourRecord
}

// DetectStormWindow scans the first two days' hours chronologically for a
// single gap-tolerant snow episode. An hour qualifies when its upstream
// conditions string mentions snow. Runs of up to gapHours-1 consecutive
// non-qualifying hours are tolerated inside the window; the scan stops once
// a gap reaches gapHours. Only the first episode is reported even when
// later separate episodes exist in the range.
func DetectStormWindow(days []DayRecord, gapHours int) *StormWindow {
	if gapHours < 1 {
		gapHours = 1
	}

	var hours []taggedHour
	for i, d := range days {
		if i >= 2 {
			break
		}
		for _, h := range d.Hours {
			hours = append(hours, taggedHour{date: d.Date, hour: h})
		}
	}

	first, last := -1, -1
	total := 0.0
	for i, th := range hours {
		if snowHour(th.hour) {
			if first == -1 {
				first = i
			}
			last = i
			total += th.hour.Snow
			continue
		}
		if last != -1 && i-last >= gapHours {
			break
		}
	}

	if first == -1 {
		return nil
	}
	return &StormWindow{
		Type:  CondSnow,
		Start: hours[first].date + " " + hours[first].hour.Time,
		End:   hours[last].date + " " + hours[last].hour.Time,
		Total: math.Round(total*10) / 10,
	}
}

func snowHour(h HourRecord) bool {
	return strings.Contains(strings.ToLower(h.Conditions), "snow")
}
