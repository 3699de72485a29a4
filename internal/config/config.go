package config

import (
	"fmt"
	"sync/atomic"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Provider    ProviderConfig  `mapstructure:"provider"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// ProviderConfig configures the OpenWeatherMap client. APIKey is required;
// Load fails before any request is attempted when it is empty.
type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	// Timeout is the per-request timeout in seconds. No retries are
	// attempted on timeout.
	Timeout int `mapstructure:"timeout"`
	// RateLimit caps outbound requests per second; the provider's free
	// tier allows 60 calls per minute.
	RateLimit float64 `mapstructure:"rate_limit"`
	Burst     int     `mapstructure:"burst"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Provider: ProviderConfig{
			BaseURL:   "https://api.openweathermap.org/data/2.5",
			APIKey:    "",
			Timeout:   10,
			RateLimit: 1,
			Burst:     5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "tempo:4317",
		},
	}
}

// Validate checks the startup preconditions. A missing API key is a fatal
// configuration error, surfaced before the first request.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider API key is not set: set SKY_PROVIDER_API_KEY or OPENWEATHER_API_KEY, or provider.api_key in the config file")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider base URL is not set")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got %d", c.Provider.Timeout)
	}
	return nil
}
