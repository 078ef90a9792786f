package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the command line tool configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the default level of the environment, e.g. "debug" or "warn"
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// Decimal contains defaults applied to parsed decimals
	Decimal struct {
		// Scale is the number of fractional digits used when no --scale flag is given
		Scale int `env:"DECIMAL_SCALE" env-default:"2" yaml:"scale"`
	} `yaml:"decimal"`

	// Metrics controls the dump of cache metrics after each command
	Metrics struct {
		// Enabled writes metrics in Prometheus text format to stderr
		Enabled bool `env:"METRICS_ENABLED" env-default:"false" yaml:"enabled"`
		// Namespace prefixes every metric name
		Namespace string `env:"METRICS_NAMESPACE" env-default:"inventar" yaml:"namespace"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration is then read from the
// environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	case err == nil:
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cleanenv cannot constrain.
func (c *Config) Validate() error {
	if c.Decimal.Scale < 0 {
		return fmt.Errorf("invalid config: decimal scale %v is negative", c.Decimal.Scale)
	}

	return nil
}
