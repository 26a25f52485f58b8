package collector

import (
	"time"

	"github.com/temirov/audittags/internal/extraction"
)

// CommandOptions captures the inputs of a single scan.
type CommandOptions struct {
	RepositoryPath string
	Settings       ScanSettings
}

// ScanSettings is the explicit configuration handed to the scan.
type ScanSettings struct {
	Extensions         []string
	ExcludedFileNames  []string
	ContextWindow      extraction.ContextWindow
	OutputDirectory    string
	JSONReportName     string
	MarkdownReportName string
	ReportTitle        string
	TimestampLayout    string
	ContextLanguage    string
}

// Summary reports the outcome of a completed scan.
type Summary struct {
	FilesScanned       int
	Annotations        int
	JSONReportPath     string
	MarkdownReportPath string
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
