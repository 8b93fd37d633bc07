package domain

import "math"

// millibars → inches of mercury.
const inHgPerMillibar = 0.02953

// compassPoints in clockwise order starting at north; each covers 22.5°.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// ToInchesOfMercury converts a barometric pressure in millibars to inches of
// mercury, rounded to two decimal places.
func ToInchesOfMercury(millibars float64) float64 {
	return math.Round(millibars*inHgPerMillibar*100) / 100
}

// DegreesToCardinal buckets a wind bearing into one of the 16 compass points.
// The modulo is applied to the rounded bucket index rather than the raw
// angle, so 360° wraps to N and negative bearings wrap the other way.
// Midpoint ties round to even: 11.25° stays N, 33.75° goes to NE.
func DegreesToCardinal(deg float64) string {
	idx := int(math.RoundToEven(deg/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}
