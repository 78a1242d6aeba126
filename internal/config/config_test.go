package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 12, cfg.Segments)
	assert.Equal(t, 3.0, cfg.ArcStepDegrees)
	assert.Equal(t, 7, cfg.Precision)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ZONEBUILDER_LOG_FORMAT", "json")
	t.Setenv("ZONEBUILDER_SEGMENTS", "8")
	t.Setenv("ZONEBUILDER_ARC_STEP", "1.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8, cfg.Segments)
	assert.Equal(t, 1.5, cfg.ArcStepDegrees)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("ZONEBUILDER_PRECISION", "seven")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestDefaultIgnoresEnvironment(t *testing.T) {
	t.Setenv("ZONEBUILDER_SEGMENTS", "6")
	t.Setenv("ZONEBUILDER_LOG_LEVEL", "debug")

	cfg := Default()
	assert.Equal(t, 12, cfg.Segments)
	assert.Equal(t, "info", cfg.LogLevel)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Segments)
}
