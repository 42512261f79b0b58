// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/formlab/formlab/errors"
	"github.com/formlab/formlab/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minTokenSecretLength = 32
)

// SimulatorConfig holds the timing and failure-injection knobs of the
// simulated API. The failure rate applies uniformly to every endpoint except
// ValidateEmail and HealthCheck, which model lightweight probes.
type SimulatorConfig struct {
	BaseDelay          time.Duration `mapstructure:"BASE_DELAY" yaml:"base_delay"`
	JitterMax          time.Duration `mapstructure:"JITTER_MAX" yaml:"jitter_max"`
	ValidateEmailDelay time.Duration `mapstructure:"VALIDATE_EMAIL_DELAY" yaml:"validate_email_delay"`
	HealthCheckDelay   time.Duration `mapstructure:"HEALTH_CHECK_DELAY" yaml:"health_check_delay"`
	FailureRate        float64       `mapstructure:"FAILURE_RATE" yaml:"failure_rate"`
	MaxUploadBytes     int64         `mapstructure:"MAX_UPLOAD_BYTES" yaml:"max_upload_bytes"`
}

// AuthConfig holds session-token minting settings for simulated logins.
type AuthConfig struct {
	TokenSecret string        `mapstructure:"TOKEN_SECRET" yaml:"token_secret"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL" yaml:"token_ttl"`
}

// EventsConfig holds notification channel settings.
type EventsConfig struct {
	BufferSize int `mapstructure:"BUFFER_SIZE" yaml:"buffer_size"`
}

// Config is the root configuration object.
type Config struct {
	Environment Environment     `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Version     string          `mapstructure:"VERSION" yaml:"version"`
	LogLevel    string          `mapstructure:"LOG_LEVEL" yaml:"log_level"`
	Simulator   SimulatorConfig `mapstructure:"SIMULATOR" yaml:"simulator"`
	Auth        AuthConfig      `mapstructure:"AUTH" yaml:"auth"`
	Events      EventsConfig    `mapstructure:"EVENTS" yaml:"events"`
}

// LoadConfig reads configuration from the environment with sane defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("ENVIRONMENT", EnvDevelopment)
	v.SetDefault("VERSION", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SIMULATOR.BASE_DELAY", "1s")
	v.SetDefault("SIMULATOR.JITTER_MAX", "500ms")
	v.SetDefault("SIMULATOR.VALIDATE_EMAIL_DELAY", "300ms")
	v.SetDefault("SIMULATOR.HEALTH_CHECK_DELAY", "100ms")
	v.SetDefault("SIMULATOR.FAILURE_RATE", 0.1)
	v.SetDefault("SIMULATOR.MAX_UPLOAD_BYTES", 5*1024*1024)
	v.SetDefault("AUTH.TOKEN_SECRET", "")
	v.SetDefault("AUTH.TOKEN_TTL", "24h")
	v.SetDefault("EVENTS.BUFFER_SIZE", 100)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"ENVIRONMENT", "ENVIRONMENT"},
		{"VERSION", "VERSION"},
		{"LOG_LEVEL", "LOG_LEVEL"},
		{"SIMULATOR.BASE_DELAY", "SIMULATOR_BASE_DELAY"},
		{"SIMULATOR.JITTER_MAX", "SIMULATOR_JITTER_MAX"},
		{"SIMULATOR.VALIDATE_EMAIL_DELAY", "SIMULATOR_VALIDATE_EMAIL_DELAY"},
		{"SIMULATOR.HEALTH_CHECK_DELAY", "SIMULATOR_HEALTH_CHECK_DELAY"},
		{"SIMULATOR.FAILURE_RATE", "SIMULATOR_FAILURE_RATE"},
		{"SIMULATOR.MAX_UPLOAD_BYTES", "SIMULATOR_MAX_UPLOAD_BYTES"},
		{"AUTH.TOKEN_SECRET", "AUTH_TOKEN_SECRET"},
		{"AUTH.TOKEN_TTL", "AUTH_TOKEN_TTL"},
		{"EVENTS.BUFFER_SIZE", "EVENTS_BUFFER_SIZE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Environment,
		"base_delay", cfg.Simulator.BaseDelay,
		"failure_rate", cfg.Simulator.FailureRate,
		"max_upload_bytes", cfg.Simulator.MaxUploadBytes,
	)
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	if cfg.Simulator.FailureRate < 0 || cfg.Simulator.FailureRate > 1 {
		return apperrors.NewConfigError("simulator failure rate must be within [0,1]",
			fmt.Sprintf("got %v", cfg.Simulator.FailureRate))
	}
	if cfg.Simulator.BaseDelay < 0 || cfg.Simulator.JitterMax < 0 {
		return apperrors.NewConfigError("simulator delays must not be negative", "")
	}
	if cfg.Simulator.MaxUploadBytes <= 0 {
		return apperrors.NewConfigError("max upload bytes must be positive", "")
	}
	if cfg.Events.BufferSize <= 0 {
		return apperrors.NewConfigError("events buffer size must be positive", "")
	}
	if cfg.Environment == EnvProduction && len(cfg.Auth.TokenSecret) < minTokenSecretLength {
		return apperrors.NewConfigError(
			fmt.Sprintf("auth token secret must be at least %d characters long in production", minTokenSecretLength), "")
	}
	return nil
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind env var %s: %w", b[1], err)
		}
	}
	return nil
}
