package extraction

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	lineFeedConstant                 = "\n"
	carriageReturnLineFeedConstant   = "\r\n"
	carriageReturnConstant           = "\r"
	readFileErrorTemplateConstant    = "failed to read %s: %w"
	invalidEncodingTemplateConstant  = "file %s is not valid UTF-8 text"
	fileReaderMissingMessageConstant = "file reader not configured"
	tagMatcherMissingMessageConstant = "tag matcher not configured"
)

// Extractor reads files and produces annotation records.
type Extractor struct {
	fileReader FileReader
	tagMatcher TagMatcher
	window     ContextWindow
}

// NewExtractor constructs an Extractor; negative window sizes are treated as zero.
func NewExtractor(fileReader FileReader, tagMatcher TagMatcher, window ContextWindow) *Extractor {
	return &Extractor{
		fileReader: fileReader,
		tagMatcher: tagMatcher,
		window:     window.normalized(),
	}
}

// ExtractFile returns the annotation records found in the file at path.
func (extractor *Extractor) ExtractFile(path string) ([]Record, error) {
	if extractor.fileReader == nil {
		return nil, errors.New(fileReaderMissingMessageConstant)
	}
	if extractor.tagMatcher == nil {
		return nil, errors.New(tagMatcherMissingMessageConstant)
	}

	content, readError := extractor.fileReader.ReadFile(path)
	if readError != nil {
		return nil, fmt.Errorf(readFileErrorTemplateConstant, path, readError)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf(invalidEncodingTemplateConstant, path)
	}

	return ExtractLines(path, string(content), extractor.tagMatcher, extractor.window), nil
}

// ExtractLines scans already loaded content. Every tag matching a line yields
// its own record, so one line can produce several records.
func ExtractLines(path string, content string, tagMatcher TagMatcher, window ContextWindow) []Record {
	lines := splitLines(content)
	normalizedWindow := window.normalized()

	var records []Record
	for lineIndex, line := range lines {
		matchedTags := tagMatcher.MatchingTags(line)
		if len(matchedTags) == 0 {
			continue
		}

		contextBlock := normalizedWindow.contextAround(lines, lineIndex)
		trimmedLine := strings.TrimSpace(line)
		for _, matchedTag := range matchedTags {
			records = append(records, Record{
				File:       path,
				LineNumber: lineIndex + 1,
				Tag:        matchedTag,
				Line:       trimmedLine,
				Context:    contextBlock,
			})
		}
	}

	return records
}

// splitLines normalizes line endings to "\n" and splits content keeping the
// terminator on every line but the last.
func splitLines(content string) []string {
	if len(content) == 0 {
		return nil
	}

	normalized := strings.ReplaceAll(content, carriageReturnLineFeedConstant, lineFeedConstant)
	normalized = strings.ReplaceAll(normalized, carriageReturnConstant, lineFeedConstant)

	lines := strings.SplitAfter(normalized, lineFeedConstant)
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (window ContextWindow) normalized() ContextWindow {
	normalizedWindow := window
	if normalizedWindow.LinesBefore < 0 {
		normalizedWindow.LinesBefore = 0
	}
	if normalizedWindow.LinesAfter < 0 {
		normalizedWindow.LinesAfter = 0
	}
	return normalizedWindow
}

func (window ContextWindow) contextAround(lines []string, lineIndex int) string {
	startIndex := max(0, lineIndex-window.LinesBefore)
	endIndex := min(len(lines), lineIndex+window.LinesAfter+1)
	return strings.TrimSpace(strings.Join(lines[startIndex:endIndex], ""))
}
