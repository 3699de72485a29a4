package display

import "math"

var compassLabels = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection converts degrees to one of 16 compass labels. The circle
// is split into 22.5° sectors and rounded to the nearest one, so 360
// wraps back to N.
func WindDirection(degrees float64) string {
	index := int(math.Round(degrees/22.5)) % 16
	if index < 0 {
		index += 16
	}
	return compassLabels[index]
}
