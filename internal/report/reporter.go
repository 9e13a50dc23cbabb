// Package report renders the human-readable statistical summary.
package report

import (
	"fmt"
	"io"

	"collapseviz/domain/measurement"
)

// Reporter writes measurement summaries to a stream, stdout in the CLI.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// WriteSummary emits the full report: dataset size, total count,
// mode/antimode, mean and sample standard deviation at two decimal
// places, and each state's empirical probability as a four-decimal
// value plus a count/total fraction. When the total is zero the
// probability list is replaced by an explicit undefined notice.
func (r *Reporter) WriteSummary(table measurement.Table, summary measurement.Summary) error {
	p := &printer{w: r.w}

	p.printf("Loaded %d unique quantum states from measurement data\n", summary.Size)
	p.printf("Total measurements: %d\n", summary.Total)

	p.printf("\nStatistical Summary:\n")
	p.printf("Most frequent state: %s (%d occurrences)\n", summary.Mode.Label, summary.Mode.Count)
	p.printf("Least frequent state: %s (%d occurrences)\n", summary.Antimode.Label, summary.Antimode.Count)
	p.printf("Average measurements per state: %.2f\n", summary.Mean)
	p.printf("Standard deviation: %.2f\n", summary.StdDev)

	if !summary.ProbabilitiesDefined() {
		p.printf("\nExperimental probabilities are undefined: total measurement count is zero\n")
		return p.err
	}

	p.printf("\nExperimental Probabilities:\n")
	for _, prob := range summary.Probabilities {
		p.printf("P(|%s⟩) = %.4f (%d/%d)\n", prob.Label, prob.Value, prob.Count, summary.Total)
	}
	return p.err
}

// printer folds write errors so report lines read linearly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
