package openweather

// Raw response shapes for the two OpenWeatherMap endpoints this client
// consumes. Blocks that normalization requires are pointers so a missing
// block is distinguishable from a zero-valued one; genuinely optional
// scalars (wind.deg, visibility, pop) are pointers for the same reason and
// get documented defaults during normalization.

// Condition is one entry of the "weather" array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Readings is the "main" block shared by current and forecast payloads.
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type Wind struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

type Sys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CurrentResponse is the raw /weather payload.
type CurrentResponse struct {
	Name    string      `json:"name"`
	Main    *Readings   `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    *Wind       `json:"wind"`
	Clouds  *Clouds     `json:"clouds"`
	Sys     *Sys        `json:"sys"`
	// Timezone is the shift from UTC in seconds.
	Timezone int64 `json:"timezone"`
	// Visibility is in meters when present.
	Visibility *float64 `json:"visibility,omitempty"`
	Dt         int64    `json:"dt"`
}

// ForecastEntry is one 3-hour slot of the /forecast payload.
type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	Main    *Readings   `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    *Wind       `json:"wind"`
	Clouds  *Clouds     `json:"clouds"`
	// Pop is the probability of precipitation as a 0-1 fraction.
	Pop *float64 `json:"pop,omitempty"`
}

// ForecastResponse is the raw 5-day/3-hour /forecast payload. Entries are
// in chronological order as delivered by the provider.
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
}

// apiError is the JSON body OpenWeatherMap returns with non-2xx statuses,
// e.g. {"cod":"404","message":"city not found"}.
type apiError struct {
	Message string `json:"message"`
}
