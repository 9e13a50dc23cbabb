package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "collapse_measurements.csv", cfg.Paths.Input)
	assert.Equal(t, "quantum_measurements.png", cfg.Paths.Output)
	assert.Equal(t, 0.7, cfg.Chart.BarAlpha)
	assert.Equal(t, "inset", cfg.Chart.LegendPosition)
	assert.False(t, cfg.Show)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INPUT_FILE", "runs/shots.xlsx")
	t.Setenv("BAR_ALPHA", "0.5")
	t.Setenv("SHOW_PLOT", "true")
	t.Setenv("LEGEND_POSITION", "outside")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "runs/shots.xlsx", cfg.Paths.Input)
	assert.Equal(t, 0.5, cfg.Chart.BarAlpha)
	assert.Equal(t, "outside", cfg.Chart.LegendPosition)
	assert.True(t, cfg.Show)
}

func TestLoadRejectsOutOfRangeAlpha(t *testing.T) {
	t.Setenv("BAR_ALPHA", "1.4")

	_, err := Load()
	assert.Error(t, err)
}
