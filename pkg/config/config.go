package config

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Prefix is prepended to every variable name.
const Prefix = "FIELDCHECK_"

// Config holds the process settings.
type Config struct {
	Environment  string `env:"ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	SchemaFile   string `env:"SCHEMA_FILE"`
	HTTP         HTTP   `envPrefix:"HTTP_"`
}

// HTTP holds the API server settings.
type HTTP struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.LogFormat != "" {
		if _, err := logger.ParseFormat(c.LogFormat); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidConfig)
	}
	return nil
}

// LoggerOptions translates the logging settings into logger options.
// Explicit level and format override the environment preset.
func (c Config) LoggerOptions(service string) []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.Environment, service)}
	if l, err := logger.ParseLevel(c.LogLevel); c.LogLevel != "" && err == nil {
		opts = append(opts, logger.WithLevel(l))
	}
	if f, err := logger.ParseFormat(c.LogFormat); c.LogFormat != "" && err == nil {
		opts = append(opts, logger.WithFormat(f))
	}
	return opts
}
