package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration in ascending precedence: struct defaults, an
// optional yaml file, then environment variables (a local .env file is
// loaded first when present). The result is validated before it is
// returned, so a missing credential stops the process here.
func Load(configPath string) (*Config, error) {
	// Credentials commonly live in a .env file during development.
	// A missing file is fine.
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SKY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaultsFromStruct(reflect.ValueOf(cfg), "", v)

	// OPENWEATHER_API_KEY is the name the provider documents, accept it
	// alongside the prefixed form.
	if err := v.BindEnv("provider.api_key", "SKY_PROVIDER_API_KEY", "OPENWEATHER_API_KEY"); err != nil {
		return nil, err
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Running from env only is supported; anything else in the
		// file is a real error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaultsFromStruct(v reflect.Value, prefix string, viper *viper.Viper) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !fieldValue.CanInterface() {
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			key = strings.ToLower(field.Name)
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if fieldValue.Kind() == reflect.Struct {
			setDefaultsFromStruct(fieldValue, fullKey, viper)
		} else {
			viper.SetDefault(fullKey, fieldValue.Interface())
		}
	}
}
