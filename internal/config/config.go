// Package config loads process configuration from the environment.
//
// The loading sequence is: .env via godotenv (non-fatal if absent), then
// envconfig struct tags, then go-playground/validator rules.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr  string `envconfig:"SPUD_ADDR" default:":8080" validate:"required"`
	Debug bool   `envconfig:"SPUD_DEBUG" default:"false"`

	// DatabaseURL enables the Postgres rig catalog; empty keeps it in memory.
	DatabaseURL string `envconfig:"DATABASE_URL" json:"-"`

	// Auth is enabled only when both are set.
	TokenKey           string `envconfig:"TOKEN_KEY" json:"-" validate:"required_with=AccessPasswordHash"`
	AccessPasswordHash string `envconfig:"ACCESS_PASSWORD_HASH" json:"-" validate:"required_with=TokenKey"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5" validate:"gt=0"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"10" validate:"min=1"`

	SweepWorkers      int     `envconfig:"SWEEP_WORKERS" default:"0" validate:"min=0"`
	ParallelThreshold int     `envconfig:"PARALLEL_THRESHOLD" default:"2000" validate:"min=1"`
	DefaultDz         float64 `envconfig:"DEFAULT_DZ" default:"0.25" validate:"gt=0"`
	DefaultMaxDepth   float64 `envconfig:"DEFAULT_MAX_DEPTH" default:"50" validate:"gt=0"`
}

// AuthEnabled reports whether the API requires a session token.
func (c *Config) AuthEnabled() bool {
	return c.TokenKey != "" && c.AccessPasswordHash != ""
}

type ConfigErrorType string

const (
	ErrParsing    ConfigErrorType = "PARSING_FAILED"
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
)

// ConfigError is returned by Load; Unwrap exposes the envconfig or validator
// error underneath.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads .env files (existing environment wins) and the process
// environment.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}
	return &cfg, nil
}
