package collector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/audittags/internal/collector"
	"github.com/temirov/audittags/internal/extraction"
)

func TestAggregatorPreservesOrderAndDuplicates(testInstance *testing.T) {
	firstFileRecords := []extraction.Record{
		{File: "A.sol", LineNumber: 2, Tag: "audit"},
		{File: "A.sol", LineNumber: 2, Tag: "audit"},
	}
	secondFileRecords := []extraction.Record{
		{File: "B.sol", LineNumber: 1, Tag: "audit-todo"},
	}

	aggregator := &collector.Aggregator{}
	require.Empty(testInstance, aggregator.Records())

	aggregator.Append(firstFileRecords)
	aggregator.Append(nil)
	aggregator.Append(secondFileRecords)

	require.Equal(testInstance, 3, aggregator.Len())
	require.Equal(testInstance, append(append([]extraction.Record{}, firstFileRecords...), secondFileRecords...), aggregator.Records())
}
