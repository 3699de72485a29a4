package display

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name           string
		epochSeconds   int64
		timezoneOffset int64
		want           string
	}{
		// 2023-06-21 04:43:00 UTC
		{"no offset", 1687322580, 0, "04:43 AM"},
		{"positive offset", 1687322580, 3600, "05:43 AM"},
		{"offset across noon", 1687322580, 8*3600 + 1800, "01:13 PM"},
		{"midnight renders as 12 AM", 1687305600, 0, "12:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.epochSeconds, tt.timezoneOffset); got != tt.want {
				t.Errorf("FormatTime(%d, %d) = %q, want %q", tt.epochSeconds, tt.timezoneOffset, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	// 2023-06-21 is a Wednesday.
	if got := FormatDate(1687322580); got != "Wed, Jun 21" {
		t.Errorf("FormatDate(1687322580) = %q, want %q", got, "Wed, Jun 21")
	}
	// Day of month is zero padded.
	if got := FormatDate(1688169600); got != "Sat, Jul 01" {
		t.Errorf("FormatDate(1688169600) = %q, want %q", got, "Sat, Jul 01")
	}
}
