package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// stateBars draws one bar per record at integer x positions 0..n-1,
// cycling the palette per bar with the configured fill opacity and a
// solid edge stroke. plotter.BarChart colors a whole series uniformly,
// so per-bar fills need a dedicated plotter.
type stateBars struct {
	counts []float64
	width  float64 // in x units
	fills  []color.Color
	edge   draw.LineStyle
}

func newStateBars(counts []float64, cfg Config) *stateBars {
	fills := make([]color.Color, len(counts))
	for i := range counts {
		fills[i] = withAlpha(cfg.Palette[i%len(cfg.Palette)], cfg.BarAlpha)
	}
	return &stateBars{
		counts: counts,
		width:  cfg.BarWidth,
		fills:  fills,
		edge: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1),
		},
	}
}

// Plot implements plot.Plotter.
func (b *stateBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, v := range b.counts {
		xmin := trX(float64(i) - b.width/2)
		xmax := trX(float64(i) + b.width/2)
		ymin := trY(0)
		ymax := trY(v)

		poly := []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmin, Y: ymax},
			{X: xmax, Y: ymax},
			{X: xmax, Y: ymin},
		}
		c.FillPolygon(b.fills[i], c.ClipPolygonXY(poly))

		outline := append(poly, poly[0])
		c.StrokeLines(b.edge, c.ClipLinesXY(outline)...)
	}
}

// DataRange implements plot.DataRanger so autoscaling covers the full
// bar extents, half a slot beyond the outermost bars, down to the zero
// baseline.
func (b *stateBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(b.counts) == 0 {
		return 0, 1, 0, 1
	}
	ymax = b.counts[0]
	for _, v := range b.counts {
		if v > ymax {
			ymax = v
		}
	}
	return -0.5, float64(len(b.counts)) - 0.5, 0, ymax
}
