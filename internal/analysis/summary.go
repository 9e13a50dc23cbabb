// Package analysis computes descriptive statistics over a measurement
// table: totals, mode/antimode, mean, sample standard deviation, and
// per-state empirical probabilities.
package analysis

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"collapseviz/domain/core"
	"collapseviz/domain/measurement"
)

// ComputeSummary derives summary statistics from a table. It is a pure
// function: no side effects, deterministic for a given record order.
//
// Mode and antimode ties are broken by first occurrence in table order:
// a single linear scan keeping the first best-so-far. Standard deviation
// uses the sample formula (n-1 denominator) and is defined as 0 for
// tables of one record.
func ComputeSummary(table measurement.Table) (measurement.Summary, error) {
	if table.Len() == 0 {
		return measurement.Summary{}, core.ErrEmptyDataset
	}

	counts := table.Counts()

	mean, err := stats.Mean(counts)
	if err != nil {
		return measurement.Summary{}, err
	}

	summary := measurement.Summary{
		Size:     table.Len(),
		Total:    table.Total(),
		Mode:     extremal(table, func(candidate, best int) bool { return candidate > best }),
		Antimode: extremal(table, func(candidate, best int) bool { return candidate < best }),
		Mean:     mean,
		StdDev:   sampleStdDev(counts),
	}

	if summary.Total > 0 {
		summary.Probabilities = probabilities(table, summary.Total)
	}

	return summary, nil
}

// extremal scans the table once and returns the first record whose
// count beats all earlier ones under the given strict comparison.
func extremal(table measurement.Table, better func(candidate, best int) bool) measurement.Record {
	best := table.Record(0)
	for i := 1; i < table.Len(); i++ {
		if r := table.Record(i); better(r.Count, best.Count) {
			best = r
		}
	}
	return best
}

func sampleStdDev(counts []float64) float64 {
	if len(counts) < 2 {
		return 0
	}
	return stat.StdDev(counts, nil)
}

func probabilities(table measurement.Table, total int) []measurement.Probability {
	probs := make([]measurement.Probability, table.Len())
	for i := 0; i < table.Len(); i++ {
		r := table.Record(i)
		probs[i] = measurement.Probability{
			Label: r.Label,
			Count: r.Count,
			Value: float64(r.Count) / float64(total),
		}
	}
	return probs
}
