package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.InDelta(t, 3.0, cfg.Gradient.ManholeSearchRadius, 1e-9)
	assert.InDelta(t, 0.5, cfg.Gradient.MinGradientPercent, 1e-9)
	assert.InDelta(t, 12.0, cfg.Gradient.MaxGradientPercent, 1e-9)
	assert.InDelta(t, 5.0, cfg.Gradient.GradientBreakThreshold, 1e-9)
	assert.InDelta(t, 1.0, cfg.Cover.MinHeight, 1e-9)
	assert.Equal(t, "prefix", cfg.Compat.Strategy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GRADIENT_MIN_GRADIENT_PERCENT", "1.0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cfg.Gradient.MinGradientPercent, 1e-9)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigYamlFile(t *testing.T) {
	dir := t.TempDir()
	content := `compat:
  strategy: rules
  rules:
    Abwasser:
      - Abwasser Gemeinde
gradient:
  max_gradient_percent: 10.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "rules", cfg.Compat.Strategy)
	assert.Contains(t, cfg.Compat.Rules, "Abwasser")
	assert.InDelta(t, 10.0, cfg.Gradient.MaxGradientPercent, 1e-9)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("GRADIENT_MIN_GRADIENT_PERCENT", "20.0")
	t.Setenv("GRADIENT_MAX_GRADIENT_PERCENT", "12.0")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownStrategy(t *testing.T) {
	t.Setenv("COMPAT_STRATEGY", "nearest")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
