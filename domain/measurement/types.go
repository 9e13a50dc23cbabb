// Package measurement holds the core data model: labeled quantum
// measurement outcomes, their observed counts, and the summary
// statistics derived from them.
//
// Labels originate from quantum basis-state notation ("000", "101")
// but are treated as opaque category strings everywhere; nothing in
// this package assumes fixed-width binary semantics.
package measurement

// Record is one observed outcome category: a state label and the
// number of times that state was measured.
type Record struct {
	Label string
	Count int
}

// Table is an ordered set of records. Order is the insertion order
// from the source file and determines chart x-axis order; tables are
// never mutated after load.
type Table struct {
	records []Record
}

// NewTable builds a table from records in the given order.
func NewTable(records []Record) Table {
	return Table{records: records}
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.records)
}

// Record returns the i-th record in table order.
func (t Table) Record(i int) Record {
	return t.records[i]
}

// Records returns a copy of the record slice.
func (t Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Labels returns the state labels in table order.
func (t Table) Labels() []string {
	labels := make([]string, len(t.records))
	for i, r := range t.records {
		labels[i] = r.Label
	}
	return labels
}

// Counts returns the counts in table order as float64, the shape the
// statistics and plotting layers consume.
func (t Table) Counts() []float64 {
	counts := make([]float64, len(t.records))
	for i, r := range t.records {
		counts[i] = float64(r.Count)
	}
	return counts
}

// Total returns the sum of all counts.
func (t Table) Total() int {
	total := 0
	for _, r := range t.records {
		total += r.Count
	}
	return total
}

// Probability is the empirical probability of one record.
type Probability struct {
	Label string
	Count int
	Value float64 // Count / total
}

// Summary holds the descriptive statistics derived once from a table.
// It is immutable after computation.
type Summary struct {
	Size  int // number of records
	Total int // sum of counts

	Mode     Record // first record with the maximum count
	Antimode Record // first record with the minimum count

	Mean   float64
	StdDev float64 // sample standard deviation; 0 when Size <= 1

	// Probabilities is nil when Total == 0: empirical probabilities
	// are undefined for an all-zero table and must be reported as
	// such rather than emitted.
	Probabilities []Probability
}

// ProbabilitiesDefined reports whether per-state probabilities exist.
func (s Summary) ProbabilitiesDefined() bool {
	return s.Probabilities != nil
}
