// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-supplied defaults. CLI flags and parameter files
// override the clockboard fields.
type Config struct {
	LogLevel  string `env:"ZONEBUILDER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ZONEBUILDER_LOG_FORMAT" envDefault:"text"`

	Segments       int     `env:"ZONEBUILDER_SEGMENTS" envDefault:"12"`
	ArcStepDegrees float64 `env:"ZONEBUILDER_ARC_STEP" envDefault:"3"`
	Precision      int     `env:"ZONEBUILDER_PRECISION" envDefault:"7"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config described by the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the Config built from envDefault tags alone, ignoring the
// process environment.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err) // tag defaults are constant
	}
	return cfg
}
