package display

import "time"

// FormatTime renders an epoch timestamp as "03:04 PM", shifted by the
// provider's timezone offset in seconds.
func FormatTime(epochSeconds, timezoneOffset int64) string {
	return time.Unix(epochSeconds+timezoneOffset, 0).UTC().Format("03:04 PM")
}

// FormatDate renders an epoch timestamp as "Mon, Jan 02".
func FormatDate(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format("Mon, Jan 02")
}
