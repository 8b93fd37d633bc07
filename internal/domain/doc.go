// Package domain models Visual Crossing timeline weather data and derives
// the user-facing report categories from it.
//
// # Data Source
//
// Records come from the Visual Crossing Timeline API, requested with
// unitGroup=us: temperatures in °F, wind in mph, precipitation and snowfall
// in inches, visibility in miles, pressure in millibars. Timestamps inside a
// day ("datetime" on hours, "sunrise", "sunset") are local clock times in
// HH:MM:SS with no date component; the owning day record carries the
// calendar date as YYYY-MM-DD.
//
// # Upstream Conventions
//
// Precipitation type ("preciptype") is inconsistent at the source: a JSON
// array of strings on most records, a bare string on some, null or absent on
// dry hours. PrecipTypes normalizes all three shapes into a lowercase set at
// decode time so classification rules never see the raw representation.
//
// Cloud cover and visibility are optional per hour and are modeled as
// pointers: a missing value is not the same as zero (zero visibility is fog,
// missing visibility is no signal). Gust, snowfall, and precipitation amount
// default to 0 when absent.
//
// # Derived Categories
//
// The package reduces the noisy upstream fields to a small set of stable
// labels: a 16-point cardinal wind direction, a Rising/Falling/Steady
// pressure trend, a single primary condition per hour and per day, a
// contiguous snow episode (storm window), and an 8-band moon phase. Headline
// sky cover is re-derived from the cloud cover percentage rather than taken
// from the upstream free-text label; hourly entries keep the raw label.
package domain
