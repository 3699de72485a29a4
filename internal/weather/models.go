package weather

// Units selects the measurement system for a provider request.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

func (u Units) Valid() bool {
	return u == Metric || u == Imperial
}

// TemperatureSymbol returns the display suffix for temperatures in this
// unit system.
func (u Units) TemperatureSymbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// WindSpeedUnit returns the display suffix for wind speeds in this unit
// system.
func (u Units) WindSpeedUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}

// CurrentWeather is the normalized shape of a current-conditions response.
// It is only ever fully populated; a payload missing a required field fails
// normalization instead of producing a partial record.
type CurrentWeather struct {
	City    string `json:"city"`
	Country string `json:"country"`

	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`

	ConditionID int    `json:"condition_id"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	IconCode    string `json:"icon_code"`

	WindSpeed float64 `json:"wind_speed"`
	// WindDeg defaults to 0 when the provider omits wind direction.
	WindDeg float64 `json:"wind_deg"`
	Clouds  int     `json:"clouds"`

	Sunrise        int64 `json:"sunrise"`
	Sunset         int64 `json:"sunset"`
	TimezoneOffset int64 `json:"timezone_offset"`

	// VisibilityKM is derived from the provider's meters value and
	// defaults to 0 when absent.
	VisibilityKM float64 `json:"visibility_km"`
}

// ForecastPoint is one normalized 3-hour forecast slot.
type ForecastPoint struct {
	Timestamp int64 `json:"timestamp"`

	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    int     `json:"humidity"`

	ConditionID int    `json:"condition_id"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	IconCode    string `json:"icon_code"`

	WindSpeed float64 `json:"wind_speed"`
	Clouds    int     `json:"clouds"`

	// Pop is the probability of precipitation in percent, derived from
	// the provider's 0-1 fraction. Defaults to 0 when absent.
	Pop float64 `json:"pop"`
}
