// Package config loads formcheck settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"github.com/Gobd/formvalidation/forms"
)

// Views names the error views the CLI can print.
var Views = []string{"flat", "tree"}

// Config holds the CLI defaults. Flags override every field.
type Config struct {
	Form      string `env:"FORMCHECK_FORM" envDefault:"registration"`
	View      string `env:"FORMCHECK_VIEW" envDefault:"flat"`
	LogLevel  string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FORMCHECK_LOG_FORMAT" envDefault:"console"`
	LogFile   string `env:"FORMCHECK_LOG_FILE"`
}

// Load reads a .env file when one exists, then the environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that every setting names something that exists.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Form, validation.Required, validation.In(toAny(forms.Names())...)),
		validation.Field(&c.View, validation.Required, validation.In(toAny(Views)...)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("console", "json")),
	)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i := range ss {
		out[i] = ss[i]
	}
	return out
}
