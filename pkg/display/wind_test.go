package display

import "testing"

func TestWindDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{360, "N"},
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "NNW"},
		// 348.75 is exactly between NNW and N, rounding wraps to N.
		{348.75, "N"},
		{11, "N"},
		{12, "NNE"},
	}

	for _, tt := range tests {
		if got := WindDirection(tt.degrees); got != tt.want {
			t.Errorf("WindDirection(%v) = %q, want %q", tt.degrees, got, tt.want)
		}
	}
}
