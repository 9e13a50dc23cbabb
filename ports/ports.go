// Package ports defines the interfaces the pipeline service depends on,
// keeping the orchestration layer independent of concrete adapters.
package ports

import (
	"collapseviz/domain/measurement"
)

// TableReader loads a measurement table from an external source.
type TableReader interface {
	ReadTable() (measurement.Table, error)
}

// FigureRenderer builds the distribution figure for a table and
// persists it as an image at the given path.
type FigureRenderer interface {
	Render(table measurement.Table, path string) error
}

// SummaryWriter emits the human-readable statistical report.
type SummaryWriter interface {
	WriteSummary(table measurement.Table, summary measurement.Summary) error
}
