package domain

// Condition labels produced by the classifier.
const (
	CondClear        = "Clear"
	CondMostlyCloudy = "Mostly cloudy"
	CondOvercast     = "Overcast"
	CondFog          = "Fog"
	CondRain         = "Rain"
	CondSnow         = "Snow"
	CondSnowAndRain  = "Snow & Rain"
)

// conditionRule pairs a predicate with the label it produces. Rules run in
// order and the first match wins: precipitation outranks fog, fog outranks
// sky cover.
type conditionRule struct {
	name  string
	match func(h HourRecord) (string, bool)
}

var conditionRules = []conditionRule{
	{name: "snow", match: matchSnow},
	{name: "rain", match: matchRain},
	{name: "fog", match: matchFog},
	{name: "cloud cover", match: matchCloudCover},
}

// ClassifyHour derives the single user-facing condition label for one hour.
// Precipitation signals are never masked by sky-cover descriptors; with no
// signal at all the hour is Clear.
func ClassifyHour(h HourRecord) string {
	for _, rule := range conditionRules {
		if label, ok := rule.match(h); ok {
			return label
		}
	}
	return CondClear
}

func matchSnow(h HourRecord) (string, bool) {
	if h.Snow <= 0 && !h.PrecipType.Has("snow") {
		return "", false
	}
	if h.PrecipType.Has("rain") {
		return CondSnowAndRain, true
	}
	return CondSnow, true
}

func matchRain(h HourRecord) (string, bool) {
	if h.PrecipType.Has("rain") || h.Precip > 0.01 {
		return CondRain, true
	}
	return "", false
}

func matchFog(h HourRecord) (string, bool) {
	if h.Visibility != nil && *h.Visibility < 1 {
		return CondFog, true
	}
	return "", false
}

func matchCloudCover(h HourRecord) (string, bool) {
	if h.CloudCover == nil {
		return "", false
	}
	switch {
	case *h.CloudCover > 75:
		return CondOvercast, true
	case *h.CloudCover > 25:
		return CondMostlyCloudy, true
	default:
		return CondClear, true
	}
}

// skyOnly reports whether a label describes sky cover rather than an active
// weather event.
func skyOnly(label string) bool {
	return label == CondClear || label == CondMostlyCloudy || label == CondOvercast
}

// ResolveHeadline picks the headline condition for a day. The day-level
// precipitation-type set overrides the hourly signal. Failing that, the
// first of the day's first four hours classifying as an active weather
// event wins; failing that, hour zero's classification stands.
func ResolveHeadline(day DayRecord) string {
	if day.PrecipType.Has("snow") {
		return CondSnow
	}
	if day.PrecipType.Has("rain") {
		return CondRain
	}

	for i, h := range day.Hours {
		if i >= 4 {
			break
		}
		if label := ClassifyHour(h); !skyOnly(label) {
			return label
		}
	}

	if len(day.Hours) == 0 {
		return CondClear
	}
	return ClassifyHour(day.Hours[0])
}
