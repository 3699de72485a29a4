package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Provider.BaseURL != "https://api.openweathermap.org/data/2.5" {
		t.Errorf("BaseURL = %q", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Timeout != 10 {
		t.Errorf("Timeout = %d, want 10", cfg.Provider.Timeout)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestValidateMissingAPIKey(t *testing.T) {
	cfg := NewDefaultConfig()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation to fail without an API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("error %q should mention the API key", err.Error())
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Provider.APIKey = "abc123"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	cfg.Provider.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation to reject a zero timeout")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKY_PROVIDER_API_KEY", "env-key")
	t.Setenv("SKY_SERVER_PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Provider.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.Provider.APIKey)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoadAcceptsProviderEnvName(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "legacy-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Provider.APIKey != "legacy-key" {
		t.Errorf("APIKey = %q, want legacy-key", cfg.Provider.APIKey)
	}
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("SKY_PROVIDER_API_KEY", "")
	t.Setenv("OPENWEATHER_API_KEY", "")

	if _, err := Load(""); err == nil {
		t.Fatal("expected Load to fail fast without an API key")
	}
}
