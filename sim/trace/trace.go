package trace

// Trace collects event records in memory during a run. It backs the
// determinism tests (two seeded runs must produce deep-equal records) and
// gives read access to external consumers.
type Trace struct {
	records []Record
}

// New creates an empty Trace ready for recording.
func New() *Trace {
	return &Trace{records: make([]Record, 0)}
}

// Append adds a record. Records arrive in dispatch order.
func (t *Trace) Append(r Record) {
	t.records = append(t.records, r)
}

// Records returns a copy of the collected records.
func (t *Trace) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of collected records.
func (t *Trace) Len() int {
	return len(t.records)
}

// CountKind returns how many records have the given kind.
func (t *Trace) CountKind(kind string) int {
	n := 0
	for _, r := range t.records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all collected records.
func (t *Trace) Reset() {
	t.records = t.records[:0]
}
