package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// LegendPosition selects where the trend legend is anchored.
type LegendPosition string

const (
	// LegendInset places the legend inside the top-left corner of the
	// plot area, clear of the tallest bars in typical distributions.
	LegendInset LegendPosition = "inset"
	// LegendOutside pushes the legend above the top-right corner,
	// outside the data region entirely.
	LegendOutside LegendPosition = "outside"
)

// ParseLegendPosition validates a legend position string.
func ParseLegendPosition(s string) (LegendPosition, error) {
	switch LegendPosition(s) {
	case LegendInset, LegendOutside:
		return LegendPosition(s), nil
	}
	return "", fmt.Errorf("unknown legend position %q (want %q or %q)", s, LegendInset, LegendOutside)
}

// Config is an explicit rendering context: all style, palette, and
// output parameters for one figure build. There is no package-global
// plotting state; independent builds with independent Configs can run
// in the same process.
type Config struct {
	Title  string
	XLabel string
	YLabel string

	BarAlpha float64 // bar fill opacity, 0..1
	BarWidth float64 // bar width in x-axis units

	TickRotationDeg  float64 // x tick label rotation, degrees
	AnnotationOffset float64 // count-units between bar top and its value label

	LegendPosition LegendPosition

	Palette   []color.Color // cycled per bar
	LineColor color.Color   // trend line and markers

	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultConfig returns the publication defaults: 12x6 inch canvas at
// 300 DPI, 45 degree tick labels, 0.7 bar alpha, red trend line.
func DefaultConfig() Config {
	return Config{
		Title:  "Quantum Register Measurement Distribution",
		XLabel: "Quantum State (Binary Representation)",
		YLabel: "Number of Measurements",

		BarAlpha: 0.7,
		BarWidth: 0.6,

		TickRotationDeg:  45,
		AnnotationOffset: 1,

		LegendPosition: LegendInset,

		Palette:   defaultPalette(),
		LineColor: color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},

		Width:  12 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    300,
	}
}

// Validate checks ranges that would otherwise fail silently at draw time.
func (c Config) Validate() error {
	if c.BarAlpha < 0 || c.BarAlpha > 1 {
		return fmt.Errorf("bar alpha %v out of range [0,1]", c.BarAlpha)
	}
	if c.BarWidth <= 0 || c.BarWidth > 1 {
		return fmt.Errorf("bar width %v out of range (0,1]", c.BarWidth)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	return nil
}

// defaultPalette is an 8-hue perceptually even cycle.
func defaultPalette() []color.Color {
	return []color.Color{
		color.NRGBA{R: 0xf7, G: 0x71, B: 0x89, A: 0xff},
		color.NRGBA{R: 0xce, G: 0x90, B: 0x32, A: 0xff},
		color.NRGBA{R: 0x97, G: 0xa4, B: 0x31, A: 0xff},
		color.NRGBA{R: 0x32, G: 0xb1, B: 0x66, A: 0xff},
		color.NRGBA{R: 0x36, G: 0xad, B: 0xa4, A: 0xff},
		color.NRGBA{R: 0x39, G: 0xa7, B: 0xd0, A: 0xff},
		color.NRGBA{R: 0xa4, G: 0x8c, B: 0xf4, A: 0xff},
		color.NRGBA{R: 0xf5, G: 0x61, B: 0xdd, A: 0xff},
	}
}

// withAlpha scales a palette color to the configured fill opacity.
func withAlpha(c color.Color, alpha float64) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(alpha * 0xff)
	return nrgba
}
