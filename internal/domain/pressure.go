package domain

// PressureTrend classifies the change between two barometric readings.
type PressureTrend struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// TrendBetween compares the current reading against a previous one. The
// comparison is strict: any numeric difference counts, no epsilon.
func TrendBetween(current, previous float64) PressureTrend {
	switch {
	case current > previous:
		return PressureTrend{Label: "Rising", Icon: "↑"}
	case current < previous:
		return PressureTrend{Label: "Falling", Icon: "↓"}
	default:
		return PressureTrend{Label: "Steady", Icon: "→"}
	}
}
