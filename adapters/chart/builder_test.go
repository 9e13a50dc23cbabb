package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collapseviz/domain/measurement"
	"collapseviz/internal"
)

func tableOfSize(n int) measurement.Table {
	records := make([]measurement.Record, n)
	for i := range records {
		records[i] = measurement.Record{Label: strconv.FormatInt(int64(i), 2), Count: i + 1}
	}
	return measurement.NewTable(records)
}

func TestBuildSetsFurniture(t *testing.T) {
	cfg := DefaultConfig()
	p, err := NewBuilder(cfg).Build(tableOfSize(4))
	require.NoError(t, err)

	assert.Equal(t, cfg.Title, p.Title.Text)
	assert.Equal(t, cfg.XLabel, p.X.Label.Text)
	assert.Equal(t, cfg.YLabel, p.Y.Label.Text)
	assert.Equal(t, 0.0, p.Y.Min, "bars sit on a zero baseline")
}

func TestAnnotationPerBar(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64, 256} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			counts := tableOfSize(n).Counts()

			labels, err := countAnnotations(counts, 1)
			require.NoError(t, err)

			require.Len(t, labels.Labels, n, "exactly one annotation per bar")
			require.Len(t, labels.XYs, n)
			for i := range labels.XYs {
				assert.Equal(t, float64(i), labels.XYs[i].X)
				assert.Equal(t, counts[i]+1, labels.XYs[i].Y, "label floats one count unit above the bar")
				assert.Equal(t, strconv.Itoa(int(counts[i])), labels.Labels[i])
			}
		})
	}
}

func TestBarFillsCyclePaletteWithAlpha(t *testing.T) {
	cfg := DefaultConfig()
	bars := newStateBars(tableOfSize(12).Counts(), cfg)

	require.Len(t, bars.fills, 12)
	assert.Equal(t, bars.fills[0], bars.fills[8], "palette cycles after 8 hues")
	_, _, _, a := bars.fills[0].RGBA()
	assert.InDelta(t, 0.7, float64(a)/0xffff, 0.01)
}

func TestBarDataRangeCoversAllSlots(t *testing.T) {
	bars := newStateBars([]float64{3, 9, 5}, DefaultConfig())
	xmin, xmax, ymin, ymax := bars.DataRange()
	assert.Equal(t, -0.5, xmin)
	assert.Equal(t, 2.5, xmax)
	assert.Equal(t, 0.0, ymin)
	assert.Equal(t, 9.0, ymax)
}

func TestBuildLegendVariants(t *testing.T) {
	for _, pos := range []LegendPosition{LegendInset, LegendOutside} {
		cfg := DefaultConfig()
		cfg.LegendPosition = pos
		_, err := NewBuilder(cfg).Build(tableOfSize(3))
		require.NoError(t, err, "legend position %s", pos)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"alpha above one", func(c *Config) { c.BarAlpha = 1.3 }},
		{"negative alpha", func(c *Config) { c.BarAlpha = -0.1 }},
		{"zero bar width", func(c *Config) { c.BarWidth = 0 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"zero dpi", func(c *Config) { c.DPI = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewBuilder(cfg).Build(tableOfSize(2))
			assert.Error(t, err)
		})
	}
}

func TestParseLegendPosition(t *testing.T) {
	pos, err := ParseLegendPosition("outside")
	require.NoError(t, err)
	assert.Equal(t, LegendOutside, pos)

	_, err = ParseLegendPosition("best")
	assert.Error(t, err)
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	cfg := DefaultConfig()
	cfg.DPI = 72 // keep the test artifact small
	r := NewRenderer(cfg, internal.NewLogger(internal.LogLevelError))

	require.NoError(t, r.Render(tableOfSize(4), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestRenderZeroHeightBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.png")

	table := measurement.NewTable([]measurement.Record{
		{Label: "000", Count: 0},
		{Label: "111", Count: 0},
	})

	cfg := DefaultConfig()
	cfg.DPI = 72
	r := NewRenderer(cfg, internal.NewLogger(internal.LogLevelError))

	require.NoError(t, r.Render(table, path), "all-zero counts still render")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRenderUnwritablePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DPI = 72
	r := NewRenderer(cfg, internal.NewLogger(internal.LogLevelError))

	err := r.Render(tableOfSize(2), filepath.Join(t.TempDir(), "missing", "dir", "out.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out.png", "error surfaces the attempted path")
}
