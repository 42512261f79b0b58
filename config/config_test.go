package config

import (
	"testing"
	"time"

	apperrors "github.com/formlab/formlab/errors"
	"github.com/formlab/formlab/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, time.Second, cfg.Simulator.BaseDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulator.JitterMax)
	assert.Equal(t, 300*time.Millisecond, cfg.Simulator.ValidateEmailDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.Simulator.HealthCheckDelay)
	assert.InDelta(t, 0.1, cfg.Simulator.FailureRate, 1e-9)
	assert.Equal(t, int64(5*1024*1024), cfg.Simulator.MaxUploadBytes)
	assert.Equal(t, 100, cfg.Events.BufferSize)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SIMULATOR_FAILURE_RATE", "0.25")
	t.Setenv("SIMULATOR_BASE_DELAY", "10ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.InDelta(t, 0.25, cfg.Simulator.FailureRate, 1e-9)
	assert.Equal(t, 10*time.Millisecond, cfg.Simulator.BaseDelay)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: EnvDevelopment,
			Simulator: SimulatorConfig{
				BaseDelay:      time.Second,
				JitterMax:      time.Second,
				FailureRate:    0.1,
				MaxUploadBytes: 1024,
			},
			Events: EventsConfig{BufferSize: 10},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(base()))
	})

	t.Run("failure rate out of range", func(t *testing.T) {
		cfg := base()
		cfg.Simulator.FailureRate = 1.5
		err := validateConfig(cfg)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ConfigError, appErr.Type)
	})

	t.Run("negative delay", func(t *testing.T) {
		cfg := base()
		cfg.Simulator.BaseDelay = -time.Second
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("zero upload limit", func(t *testing.T) {
		cfg := base()
		cfg.Simulator.MaxUploadBytes = 0
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("production requires token secret", func(t *testing.T) {
		cfg := base()
		cfg.Environment = EnvProduction
		assert.Error(t, validateConfig(cfg))

		cfg.Auth.TokenSecret = "0123456789abcdef0123456789abcdef"
		assert.NoError(t, validateConfig(cfg))
	})
}
