package collector

import "github.com/temirov/audittags/internal/extraction"

// Aggregator accumulates annotation records in file traversal order.
type Aggregator struct {
	records []extraction.Record
}

// Append adds the records of one file without filtering or deduplication.
func (aggregator *Aggregator) Append(records []extraction.Record) {
	aggregator.records = append(aggregator.records, records...)
}

// Records returns the accumulated sequence.
func (aggregator *Aggregator) Records() []extraction.Record {
	return aggregator.records
}

// Len returns the number of accumulated records.
func (aggregator *Aggregator) Len() int {
	return len(aggregator.records)
}
