package openweather

import (
	"github.com/skyreport/skyreport/internal/weather"
)

// ParseCurrent maps a raw /weather payload onto the normalized model.
// Required blocks missing from the payload fail the whole normalization; a
// partially populated record is never returned. Optional fields take their
// documented defaults: wind.deg 0, visibility 0 km.
func ParseCurrent(raw *CurrentResponse) (*weather.CurrentWeather, error) {
	switch {
	case raw == nil:
		return nil, weather.ParseErrorf("failed to parse weather data: empty payload")
	case raw.Name == "":
		return nil, weather.ParseErrorf("failed to parse weather data: missing city name")
	case raw.Main == nil:
		return nil, weather.ParseErrorf("failed to parse weather data: missing main readings")
	case len(raw.Weather) == 0:
		return nil, weather.ParseErrorf("failed to parse weather data: missing weather conditions")
	case raw.Wind == nil:
		return nil, weather.ParseErrorf("failed to parse weather data: missing wind block")
	case raw.Clouds == nil:
		return nil, weather.ParseErrorf("failed to parse weather data: missing clouds block")
	case raw.Sys == nil:
		return nil, weather.ParseErrorf("failed to parse weather data: missing sys block")
	}

	cond := raw.Weather[0]

	current := &weather.CurrentWeather{
		City:           raw.Name,
		Country:        raw.Sys.Country,
		Temperature:    raw.Main.Temp,
		FeelsLike:      raw.Main.FeelsLike,
		TempMin:        raw.Main.TempMin,
		TempMax:        raw.Main.TempMax,
		Humidity:       raw.Main.Humidity,
		Pressure:       raw.Main.Pressure,
		ConditionID:    cond.ID,
		Condition:      cond.Main,
		Description:    cond.Description,
		IconCode:       cond.Icon,
		WindSpeed:      raw.Wind.Speed,
		Clouds:         raw.Clouds.All,
		Sunrise:        raw.Sys.Sunrise,
		Sunset:         raw.Sys.Sunset,
		TimezoneOffset: raw.Timezone,
	}

	if raw.Wind.Deg != nil {
		current.WindDeg = *raw.Wind.Deg
	}
	if raw.Visibility != nil {
		current.VisibilityKM = *raw.Visibility / 1000
	}

	return current, nil
}

// ParseForecast maps a raw /forecast payload onto an ordered slice of
// forecast points. One malformed entry fails the entire batch; partial
// results are never returned.
func ParseForecast(raw *ForecastResponse) ([]weather.ForecastPoint, error) {
	if raw == nil || raw.List == nil {
		return nil, weather.ParseErrorf("failed to parse forecast data: missing forecast list")
	}

	points := make([]weather.ForecastPoint, 0, len(raw.List))

	for i, entry := range raw.List {
		point, err := parseForecastEntry(i, entry)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}

func parseForecastEntry(i int, entry ForecastEntry) (weather.ForecastPoint, error) {
	switch {
	case entry.Main == nil:
		return weather.ForecastPoint{}, weather.ParseErrorf("failed to parse forecast data: entry %d: missing main readings", i)
	case len(entry.Weather) == 0:
		return weather.ForecastPoint{}, weather.ParseErrorf("failed to parse forecast data: entry %d: missing weather conditions", i)
	case entry.Wind == nil:
		return weather.ForecastPoint{}, weather.ParseErrorf("failed to parse forecast data: entry %d: missing wind block", i)
	case entry.Clouds == nil:
		return weather.ForecastPoint{}, weather.ParseErrorf("failed to parse forecast data: entry %d: missing clouds block", i)
	}

	cond := entry.Weather[0]

	point := weather.ForecastPoint{
		Timestamp:   entry.Dt,
		Temperature: entry.Main.Temp,
		FeelsLike:   entry.Main.FeelsLike,
		TempMin:     entry.Main.TempMin,
		TempMax:     entry.Main.TempMax,
		Humidity:    entry.Main.Humidity,
		ConditionID: cond.ID,
		Condition:   cond.Main,
		Description: cond.Description,
		IconCode:    cond.Icon,
		WindSpeed:   entry.Wind.Speed,
		Clouds:      entry.Clouds.All,
	}

	if entry.Pop != nil {
		point.Pop = *entry.Pop * 100
	}

	return point, nil
}
