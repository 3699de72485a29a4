package weather

import "context"

// Provider is the boundary between the presentation layer and a weather
// data source. Exactly two operations: normalized current conditions and a
// normalized, chronologically ordered forecast. Failures are *Error values.
type Provider interface {
	Current(ctx context.Context, city string, units Units) (*CurrentWeather, error)
	Forecast(ctx context.Context, city string, units Units) ([]ForecastPoint, error)
	Name() string
}
