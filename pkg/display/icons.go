// Package display holds the leaf rendering helpers: condition icons,
// compass directions, timestamp formatting and temperature conversions.
// Everything here is a pure function.
package display

import "strings"

// Icons for the OpenWeatherMap condition code groups
// (https://openweathermap.org/weather-conditions).
const (
	IconThunderstorm = "⛈️"
	IconDrizzle      = "🌦️"
	IconRain         = "🌧️"
	IconSnow         = "❄️"
	IconAtmosphere   = "🌫️"
	IconClear        = "☀️"
	IconClouds       = "☁️"
	IconDefault      = "🌤️"
)

type iconRule struct {
	matches func(code int) bool
	icon    string
}

func exactly(want int) func(int) bool {
	return func(code int) bool { return code == want }
}

func between(lo, hi int) func(int) bool {
	return func(code int) bool { return code >= lo && code <= hi }
}

// iconRules is evaluated top to bottom; the exact match for clear sky wins
// before any range. Order is the precedence contract, keep it explicit.
var iconRules = []iconRule{
	{exactly(800), IconClear},
	{between(200, 232), IconThunderstorm},
	{between(300, 321), IconDrizzle},
	{between(500, 531), IconRain},
	{between(600, 622), IconSnow},
	{between(700, 781), IconAtmosphere},
	{between(801, 804), IconClouds},
}

// Icon maps a condition code to an icon. Unknown codes fall back to keyword
// matching on the description, then to IconDefault. Total function, never
// fails.
func Icon(code int, description string) string {
	for _, rule := range iconRules {
		if rule.matches(code) {
			return rule.icon
		}
	}

	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "rain"):
		return IconRain
	case strings.Contains(desc, "cloud"):
		return IconClouds
	case strings.Contains(desc, "clear"):
		return IconClear
	case strings.Contains(desc, "snow"):
		return IconSnow
	case strings.Contains(desc, "thunder"), strings.Contains(desc, "storm"):
		return IconThunderstorm
	}

	return IconDefault
}
