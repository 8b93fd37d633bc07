package domain

import (
	"math"
	"time"
)

// moonEpoch is a known new moon used as the phase reference.
var moonEpoch = time.Date(2000, time.January, 6, 0, 0, 0, 0, time.UTC)

// synodicMonth is the mean period between successive new moons, in days.
const synodicMonth = 29.53058867

// MoonPhase is the derived lunar state for a calendar date.
type MoonPhase struct {
	Name         string `json:"name"`
	Illumination int    `json:"illum"` // percent, 0-100
	Icon         string `json:"icon"`
}

// MoonPhaseForDate computes the moon phase for a calendar date. Only the
// date matters; any time-of-day component is truncated. Deterministic and
// reproducible for any input, including dates before the reference epoch.
func MoonPhaseForDate(date time.Time) MoonPhase {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := math.Floor(day.Sub(moonEpoch).Hours() / 24)

	// True floating modulo: the fraction must land in [0, synodicMonth)
	// even for dates before the epoch.
	elapsed := math.Mod(days, synodicMonth)
	if elapsed < 0 {
		elapsed += synodicMonth
	}
	phase := elapsed / synodicMonth

	illum := int(math.Round((1 - math.Cos(2*math.Pi*phase)) / 2 * 100))

	name, icon := classifyPhase(phase)
	return MoonPhase{Name: name, Illumination: illum, Icon: icon}
}

// classifyPhase maps a phase fraction to one of 8 fixed bands. Boundaries
// are half-open and checked in order; first match wins.
func classifyPhase(phase float64) (string, string) {
	switch {
	case phase < 0.03 || phase > 0.97:
		return "New Moon", "🌑"
	case phase < 0.22:
		return "Waxing Crescent", "🌒"
	case phase < 0.28:
		return "First Quarter", "🌓"
	case phase < 0.47:
		return "Waxing Gibbous", "🌔"
	case phase < 0.53:
		return "Full Moon", "🌕"
	case phase < 0.72:
		return "Waning Gibbous", "🌖"
	case phase < 0.78:
		return "Last Quarter", "🌗"
	default:
		return "Waning Crescent", "🌘"
	}
}
