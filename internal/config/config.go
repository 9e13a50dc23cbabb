// Package config loads pipeline settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Paths PathConfig
	Chart ChartConfig
	Show  bool // open the exported image in the OS viewer
}

// PathConfig holds input and output file locations
type PathConfig struct {
	Input  string
	Output string
}

// ChartConfig holds the cosmetic chart choices that vary between runs
type ChartConfig struct {
	Title          string
	XLabel         string
	YLabel         string
	BarAlpha       float64
	LegendPosition string
}

// Load reads configuration from environment variables, applying the
// documented defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Paths: PathConfig{
			Input:  getEnvOrDefault("INPUT_FILE", "collapse_measurements.csv"),
			Output: getEnvOrDefault("OUTPUT_FILE", "quantum_measurements.png"),
		},
		Chart: ChartConfig{
			Title:          getEnvOrDefault("CHART_TITLE", ""),
			XLabel:         getEnvOrDefault("CHART_X_LABEL", ""),
			YLabel:         getEnvOrDefault("CHART_Y_LABEL", ""),
			BarAlpha:       getEnvFloatOrDefault("BAR_ALPHA", 0.7),
			LegendPosition: getEnvOrDefault("LEGEND_POSITION", "inset"),
		},
		Show: getEnvBoolOrDefault("SHOW_PLOT", false),
	}

	if cfg.Chart.BarAlpha < 0 || cfg.Chart.BarAlpha > 1 {
		return nil, fmt.Errorf("BAR_ALPHA %v out of range [0,1]", cfg.Chart.BarAlpha)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
