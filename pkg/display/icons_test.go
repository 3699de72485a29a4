package display

import "testing"

func TestIconByCode(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		description string
		want        string
	}{
		{"clear sky exact code", 800, "clear sky", IconClear},
		{"thunderstorm range start", 200, "thunderstorm with light rain", IconThunderstorm},
		{"thunderstorm range end", 232, "thunderstorm with heavy drizzle", IconThunderstorm},
		{"drizzle", 301, "drizzle", IconDrizzle},
		{"rain", 500, "light rain", IconRain},
		{"heavy rain", 531, "ragged shower rain", IconRain},
		{"snow", 600, "light snow", IconSnow},
		{"atmosphere", 741, "fog", IconAtmosphere},
		{"clouds", 804, "overcast clouds", IconClouds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Icon(tt.code, tt.description); got != tt.want {
				t.Errorf("Icon(%d, %q) = %q, want %q", tt.code, tt.description, got, tt.want)
			}
		})
	}
}

func TestIconKeywordFallback(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		description string
		want        string
	}{
		{"unknown code rain keyword", 999, "light rain", IconRain},
		{"unknown code cloud keyword", 999, "Scattered Clouds", IconClouds},
		{"unknown code clear keyword", 999, "mostly clear", IconClear},
		{"unknown code snow keyword", 999, "wet snow", IconSnow},
		{"unknown code thunder keyword", 999, "thundery outbreaks", IconThunderstorm},
		{"unknown code storm keyword", 999, "tropical storm", IconThunderstorm},
		{"rain keyword wins over cloud", 999, "rain and clouds", IconRain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Icon(tt.code, tt.description); got != tt.want {
				t.Errorf("Icon(%d, %q) = %q, want %q", tt.code, tt.description, got, tt.want)
			}
		})
	}
}

func TestIconDefault(t *testing.T) {
	if got := Icon(999, ""); got != IconDefault {
		t.Errorf("Icon(999, \"\") = %q, want default icon %q", got, IconDefault)
	}
}
