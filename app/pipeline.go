// Package app orchestrates the measurement visualization pipeline:
// load table, compute statistics, render figure, export, report.
package app

import (
	"context"
	"fmt"

	"collapseviz/domain/core"
	"collapseviz/internal"
	"collapseviz/internal/analysis"
	"collapseviz/ports"
)

// Viewer presents an exported image interactively. Implementations are
// best effort and must not fail the pipeline.
type Viewer interface {
	Show(path string)
}

// PipelineService runs one end-to-end visualization pass. Stages run
// strictly in sequence; any stage error aborts the run immediately.
type PipelineService struct {
	reader   ports.TableReader
	renderer ports.FigureRenderer
	reporter ports.SummaryWriter
	viewer   Viewer // nil disables interactive display

	outputPath string
	log        *internal.Logger
}

// NewPipelineService wires the pipeline from its collaborators.
func NewPipelineService(
	reader ports.TableReader,
	renderer ports.FigureRenderer,
	reporter ports.SummaryWriter,
	viewer Viewer,
	outputPath string,
	log *internal.Logger,
) *PipelineService {
	return &PipelineService{
		reader:     reader,
		renderer:   renderer,
		reporter:   reporter,
		viewer:     viewer,
		outputPath: outputPath,
		log:        log,
	}
}

// Run executes the pipeline once. The context is accepted for caller
// symmetry; no stage suspends.
func (s *PipelineService) Run(ctx context.Context) error {
	runID := core.NewRunID()
	s.log.Info("[pipeline] run %s starting", runID)

	table, err := s.reader.ReadTable()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.log.Debug("[pipeline] run %s loaded %d records", runID, table.Len())

	summary, err := analysis.ComputeSummary(table)
	if err != nil {
		return fmt.Errorf("statistics: %w", err)
	}
	if !summary.ProbabilitiesDefined() {
		s.log.Warn("[pipeline] run %s: all counts are zero, probabilities undefined", runID)
	}

	if err := s.renderer.Render(table, s.outputPath); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if s.viewer != nil {
		s.viewer.Show(s.outputPath)
	}

	if err := s.reporter.WriteSummary(table, summary); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	s.log.Info("[pipeline] run %s complete", runID)
	return nil
}
