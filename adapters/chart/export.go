package chart

import (
	"image/color"
	"os"
	"os/exec"
	"runtime"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"collapseviz/domain/core"
	"collapseviz/domain/measurement"
	"collapseviz/internal"
)

// Renderer builds and persists figures. It implements the pipeline's
// FigureRenderer port.
type Renderer struct {
	builder *Builder
	cfg     Config
	log     *internal.Logger
}

// NewRenderer creates a renderer with the given rendering context.
func NewRenderer(cfg Config, log *internal.Logger) *Renderer {
	return &Renderer{builder: NewBuilder(cfg), cfg: cfg, log: log}
}

// Render builds the figure for a table and writes it to path as a PNG.
func (r *Renderer) Render(table measurement.Table, path string) error {
	p, err := r.builder.Build(table)
	if err != nil {
		return err
	}
	return r.export(p, path)
}

// export rasterizes onto a white-background canvas at the configured
// size and DPI and writes lossless PNG.
func (r *Renderer) export(p *plot.Plot, path string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(r.cfg.Width, r.cfg.Height),
		vgimg.UseDPI(r.cfg.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return core.NewExportError(path, err)
	}

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return core.NewExportError(path, err)
	}
	if err := f.Close(); err != nil {
		return core.NewExportError(path, err)
	}

	r.log.Info("[chart] wrote %s (%d DPI)", path, r.cfg.DPI)
	return nil
}

// Show hands the written image to the platform viewer. Display is best
// effort: a headless environment logs a warning and the run continues.
func (r *Renderer) Show(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		r.log.Warn("[chart] no viewer available for %s: %v", path, err)
		return
	}
	// Reap the viewer process without blocking the pipeline.
	go func() { _ = cmd.Wait() }()
}
