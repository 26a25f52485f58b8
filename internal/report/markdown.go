package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/temirov/audittags/internal/extraction"
	"github.com/temirov/audittags/internal/tags"
)

const (
	defaultReportTitleConstant      = "Audit Tag Report"
	defaultTimestampLayoutConstant  = "January 02, 2006, 15:04:05"
	defaultContextLanguageConstant  = "js"
	documentHeaderTemplateConstant  = "# %s\n\nGenerated on: %s\n\n"
	questionsHeadingConstant        = "## Outstanding Questions\n\n"
	questionItemTemplateConstant    = "- [ ] %s [`%s:%d`]"
	questionListSeparatorConstant   = "\n"
	sectionTerminatorConstant       = "\n\n"
	categoryHeadingTemplateConstant = "## %s\n\n"
	annotationEntryTemplateConstant = "### %s\n**File:** `%s`  \n**Location:** Line %d  \n**Context:**\n```%s\n%s\n```\n\n"
	questionTagConstant             = tags.TagAuditQuestion
)

// MarkdownOptions controls presentation details of the Markdown report.
type MarkdownOptions struct {
	Title           string
	TimestampLayout string
	ContextLanguage string
	GeneratedAt     time.Time
}

// DefaultMarkdownOptions returns the standard report presentation stamped with generatedAt.
func DefaultMarkdownOptions(generatedAt time.Time) MarkdownOptions {
	return MarkdownOptions{
		Title:           defaultReportTitleConstant,
		TimestampLayout: defaultTimestampLayoutConstant,
		ContextLanguage: defaultContextLanguageConstant,
		GeneratedAt:     generatedAt,
	}
}

func (options MarkdownOptions) sanitize() MarkdownOptions {
	sanitized := options
	if len(strings.TrimSpace(sanitized.Title)) == 0 {
		sanitized.Title = defaultReportTitleConstant
	}
	if len(strings.TrimSpace(sanitized.TimestampLayout)) == 0 {
		sanitized.TimestampLayout = defaultTimestampLayoutConstant
	}
	sanitized.ContextLanguage = strings.TrimSpace(sanitized.ContextLanguage)
	return sanitized
}

// RenderMarkdown produces the categorized Markdown report.
//
// Questions are listed twice: once as the top-level checklist and once more
// in their own category section. Sections follow the order of categories
// and are omitted when no record carries the tag.
func RenderMarkdown(records []extraction.Record, categories []tags.Definition, options MarkdownOptions) []byte {
	sanitizedOptions := options.sanitize()

	var builder strings.Builder
	fmt.Fprintf(&builder, documentHeaderTemplateConstant, sanitizedOptions.Title, sanitizedOptions.GeneratedAt.Format(sanitizedOptions.TimestampLayout))

	questionItems := outstandingQuestionItems(records)
	if len(questionItems) > 0 {
		builder.WriteString(questionsHeadingConstant)
		builder.WriteString(strings.Join(questionItems, questionListSeparatorConstant))
		builder.WriteString(sectionTerminatorConstant)
	}

	for _, definition := range categories {
		categoryRecords := recordsWithTag(records, definition.Name())
		if len(categoryRecords) == 0 {
			continue
		}

		fmt.Fprintf(&builder, categoryHeadingTemplateConstant, definition.CategoryTitle())
		for _, record := range categoryRecords {
			fmt.Fprintf(&builder, annotationEntryTemplateConstant, record.Line, record.File, record.LineNumber, sanitizedOptions.ContextLanguage, record.Context)
		}
	}

	return []byte(builder.String())
}

func outstandingQuestionItems(records []extraction.Record) []string {
	var items []string
	for _, record := range recordsWithTag(records, questionTagConstant) {
		items = append(items, fmt.Sprintf(questionItemTemplateConstant, record.Line, record.File, record.LineNumber))
	}
	return items
}

func recordsWithTag(records []extraction.Record, tagName string) []extraction.Record {
	var matching []extraction.Record
	for _, record := range records {
		if record.Tag == tagName {
			matching = append(matching, record)
		}
	}
	return matching
}
