package extraction

// Record models a single annotation found in a source file.
type Record struct {
	File       string `json:"file"`
	LineNumber int    `json:"line_number"`
	Tag        string `json:"tag"`
	Line       string `json:"line"`
	Context    string `json:"context"`
}

// ContextWindow bounds the number of lines captured around a match.
type ContextWindow struct {
	LinesBefore int
	LinesAfter  int
}

// DefaultContextWindow captures two lines on each side of a match.
func DefaultContextWindow() ContextWindow {
	return ContextWindow{LinesBefore: 2, LinesAfter: 2}
}

// FileReader loads file contents.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// TagMatcher reports the tag names that match a line, in registry order.
type TagMatcher interface {
	MatchingTags(line string) []string
}
