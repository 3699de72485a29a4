package handlers

import "github.com/skyreport/skyreport/internal/weather"

// WeatherRequest is the query contract for GET /weather. Units defaults to
// metric when omitted.
type WeatherRequest struct {
	City  string `form:"city" json:"city" binding:"required" validate:"required,min=1,max=128"`
	Units string `form:"units" json:"units" validate:"omitempty,units"`
}

// WeatherResponse carries the normalized current conditions plus the
// forecast. When only the forecast fails, current weather is still
// returned and ForecastError explains the gap.
type WeatherResponse struct {
	City          string                  `json:"city"`
	Units         string                  `json:"units"`
	Current       *weather.CurrentWeather `json:"current"`
	Forecast      []weather.ForecastPoint `json:"forecast,omitempty"`
	ForecastError string                  `json:"forecast_error,omitempty"`
	FetchedAt     string                  `json:"fetched_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp,omitempty"`
}
