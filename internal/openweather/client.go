package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/skyreport/skyreport/internal/config"
	"github.com/skyreport/skyreport/internal/metrics"
	"github.com/skyreport/skyreport/internal/weather"
	"github.com/skyreport/skyreport/pkg/telemetry"
)

const (
	endpointCurrent  = "weather"
	endpointForecast = "forecast"
)

// Client fetches current conditions and 5-day/3-hour forecasts from
// OpenWeatherMap. It holds only immutable state after construction, so a
// single instance is safe for concurrent use. Each call is one request
// with a fixed timeout: no retries, no backoff, no caching.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

var _ weather.Provider = (*Client)(nil)

// NewClient builds a client from config. The API key is a construction
// precondition: an empty key is rejected here, before any request.
func NewClient(cfg config.ProviderConfig, logger *zap.Logger, tele *telemetry.Telemetry) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openweather: API key is required")
	}

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
		tele:    tele,
	}, nil
}

func (c *Client) Name() string {
	return "openweathermap"
}

// Current returns normalized current conditions for a city.
func (c *Client) Current(ctx context.Context, city string, units weather.Units) (*weather.CurrentWeather, error) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "openweather.Current")
	defer span.End()

	span.SetAttributes(
		attribute.String("city", city),
		attribute.String("units", string(units)),
	)

	var raw CurrentResponse
	if err := c.get(ctx, endpointCurrent, city, units, &raw); err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, err
	}

	current, err := ParseCurrent(&raw)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		c.logger.Warn("Current weather payload failed normalization",
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Bool("success", true))
	return current, nil
}

// Forecast returns the normalized forecast, one point per 3-hour slot, in
// the provider's chronological order.
func (c *Client) Forecast(ctx context.Context, city string, units weather.Units) ([]weather.ForecastPoint, error) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "openweather.Forecast")
	defer span.End()

	span.SetAttributes(
		attribute.String("city", city),
		attribute.String("units", string(units)),
	)

	var raw ForecastResponse
	if err := c.get(ctx, endpointForecast, city, units, &raw); err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, err
	}

	points, err := ParseForecast(&raw)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		c.logger.Warn("Forecast payload failed normalization",
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("points", len(points)),
	)
	return points, nil
}

// get issues one GET against an endpoint and decodes the body into out.
// All failures come back as *weather.Error so callers up the stack check a
// single shape.
func (c *Client) get(ctx context.Context, endpoint, city string, units weather.Units, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return weather.TransportErrorf("rate limit wait canceled: %v", err)
	}

	u, err := url.Parse(fmt.Sprintf("%s/%s", c.baseURL, endpoint))
	if err != nil {
		return weather.TransportErrorf("invalid provider URL: %v", err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", string(units))
	u.RawQuery = q.Encode()

	c.logger.Debug("Fetching from OpenWeatherMap",
		zap.String("endpoint", endpoint),
		zap.String("city", city),
		zap.String("units", string(units)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return weather.TransportErrorf("failed to create request: %v", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ProviderCallLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues(endpoint, "error").Inc()
		return weather.TransportErrorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	metrics.ProviderCallsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNotFound {
		return weather.NotFoundError(city)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return weather.TransportErrorf("HTTP error: status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return weather.TransportErrorf("HTTP error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return weather.ParseErrorf("failed to decode provider response: %v", err)
	}

	return nil
}
