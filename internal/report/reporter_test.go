package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collapseviz/domain/measurement"
	"collapseviz/internal/analysis"
)

func summarize(t *testing.T, records []measurement.Record) (measurement.Table, measurement.Summary) {
	t.Helper()
	table := measurement.NewTable(records)
	summary, err := analysis.ComputeSummary(table)
	require.NoError(t, err)
	return table, summary
}

func TestWriteSummary(t *testing.T) {
	table, summary := summarize(t, []measurement.Record{
		{Label: "00", Count: 10},
		{Label: "01", Count: 20},
		{Label: "10", Count: 30},
		{Label: "11", Count: 40},
	})

	var buf strings.Builder
	require.NoError(t, NewReporter(&buf).WriteSummary(table, summary))
	out := buf.String()

	assert.Contains(t, out, "Loaded 4 unique quantum states from measurement data")
	assert.Contains(t, out, "Total measurements: 100")
	assert.Contains(t, out, "Most frequent state: 11 (40 occurrences)")
	assert.Contains(t, out, "Least frequent state: 00 (10 occurrences)")
	assert.Contains(t, out, "Average measurements per state: 25.00")
	assert.Contains(t, out, "Standard deviation: 12.91")
	assert.Contains(t, out, "P(|00⟩) = 0.1000 (10/100)")
	assert.Contains(t, out, "P(|11⟩) = 0.4000 (40/100)")
}

func TestWriteSummaryIsDeterministic(t *testing.T) {
	table, summary := summarize(t, []measurement.Record{
		{Label: "0", Count: 2},
		{Label: "1", Count: 6},
	})

	var first, second strings.Builder
	require.NoError(t, NewReporter(&first).WriteSummary(table, summary))
	require.NoError(t, NewReporter(&second).WriteSummary(table, summary))
	assert.Equal(t, first.String(), second.String())
}

func TestWriteSummaryProbabilityOrderMatchesTable(t *testing.T) {
	table, summary := summarize(t, []measurement.Record{
		{Label: "11", Count: 1},
		{Label: "00", Count: 3},
	})

	var buf strings.Builder
	require.NoError(t, NewReporter(&buf).WriteSummary(table, summary))

	out := buf.String()
	assert.Less(t, strings.Index(out, "P(|11⟩)"), strings.Index(out, "P(|00⟩)"))
}

func TestWriteSummaryZeroTotal(t *testing.T) {
	table, summary := summarize(t, []measurement.Record{
		{Label: "000", Count: 0},
		{Label: "111", Count: 0},
	})

	var buf strings.Builder
	require.NoError(t, NewReporter(&buf).WriteSummary(table, summary))
	out := buf.String()

	assert.Contains(t, out, "probabilities are undefined")
	assert.NotContains(t, out, "P(|", "no per-state probability lines for a zero total")
	assert.Contains(t, out, "Total measurements: 0")
}
