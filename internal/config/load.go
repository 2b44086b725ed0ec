package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file, which in turn override the
// built-in defaults (port 3000, development mode, info-level logging).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.env", EnvDevelopment)
	v.SetDefault("server.log_level", "info")

	// Read from an optional config file in the working directory.
	// A missing file is fine; anything else (e.g. malformed YAML) is not.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables with the ITEMS_ prefix
	v.SetEnvPrefix("ITEMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables. The plain PORT
	// variable is honored as an alias for the port so the usual
	// deployment convention keeps working.
	bindEnvs := []struct {
		key     string
		envVars []string
	}{
		{"server.port", []string{"ITEMS_SERVER_PORT", "PORT"}},
		{"server.env", []string{"ITEMS_SERVER_ENV"}},
		{"server.log_level", []string{"ITEMS_SERVER_LOG_LEVEL"}},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(append([]string{env.key}, env.envVars...)...); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", env.key, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
