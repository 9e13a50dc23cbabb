// Package chart builds the measurement distribution figure: a bar
// series for magnitude with a trend line overlay on one categorical
// axis, annotated per bar, and exports it as a publication-resolution
// PNG.
package chart

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"collapseviz/domain/measurement"
)

// Builder constructs figures from measurement tables using an explicit
// Config rendering context.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder for the given config.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build constructs the figure: grid behind, bars next, trend line and
// markers on top, one count annotation per bar, state labels as rotated
// x ticks. Construction only; the table is assumed validated upstream.
func (b *Builder) Build(table measurement.Table) (*plot.Plot, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	counts := table.Counts()

	p := plot.New()
	p.Title.Text = b.cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(15)
	p.X.Label.Text = b.cfg.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = b.cfg.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.Add(horizontalGrid())
	p.Add(newStateBars(counts, b.cfg))

	line, points, err := plotter.NewLinePoints(countXYs(counts))
	if err != nil {
		return nil, err
	}
	line.Color = b.cfg.LineColor
	line.Width = vg.Points(2)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Color = b.cfg.LineColor
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points)

	annotations, err := countAnnotations(counts, b.cfg.AnnotationOffset)
	if err != nil {
		return nil, err
	}
	p.Add(annotations)

	p.NominalX(table.Labels()...)
	p.X.Tick.Label.Rotation = b.cfg.TickRotationDeg * math.Pi / 180
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	p.Legend.Add("Measurement Trend", line, points)
	p.Legend.Top = true
	switch b.cfg.LegendPosition {
	case LegendOutside:
		p.Legend.YOffs = vg.Points(18)
	default:
		p.Legend.Left = true
		p.Legend.XOffs = vg.Points(10)
		p.Legend.YOffs = -vg.Points(6)
	}

	p.Y.Min = 0
	return p, nil
}

func countXYs(counts []float64) plotter.XYs {
	xys := make(plotter.XYs, len(counts))
	for i, v := range counts {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	return xys
}

// countAnnotations places each bar's exact count just above the bar
// top, horizontally centered.
func countAnnotations(counts []float64, offset float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(counts))
	names := make([]string, len(counts))
	for i, v := range counts {
		xys[i] = plotter.XY{X: float64(i), Y: v + offset}
		names[i] = strconv.Itoa(int(v))
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}
	return labels, nil
}

// horizontalGrid returns dashed y-gridlines at reduced opacity with the
// vertical lines suppressed.
func horizontalGrid() *plotter.Grid {
	grid := plotter.NewGrid()
	grid.Vertical.Width = 0
	grid.Horizontal.Color = color.NRGBA{A: 0x55}
	grid.Horizontal.Width = vg.Points(0.5)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	return grid
}
