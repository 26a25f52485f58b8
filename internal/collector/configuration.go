package collector

import (
	"errors"
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"

	"github.com/temirov/audittags/internal/extraction"
)

const (
	defaultExtensionSolidityConstant    = ".sol"
	defaultExtensionJavaScriptConstant  = ".js"
	defaultOutputDirectoryConstant      = "."
	defaultJSONReportNameConstant       = "audit_tag_report.json"
	defaultMarkdownReportNameConstant   = "audit_tag_report.md"
	defaultTimestampLayoutConstant      = "January 02, 2006, 15:04:05"
	defaultReportTitleConstant          = "Audit Tag Report"
	defaultContextLanguageConstant      = "js"
	configurationKeySeparatorConstant   = "."
	extensionPrefixConstant             = "."
	negativeContextLinesMessageConstant = "context line counts must not be negative"
	defaultValuesDecodeTemplateConstant = "unable to derive collector defaults: %w"
)

// CommandConfiguration captures persistent settings for the scan command.
type CommandConfiguration struct {
	Extensions         []string `mapstructure:"extensions"`
	ExcludedFiles      []string `mapstructure:"excluded_files"`
	ContextLinesBefore int      `mapstructure:"context_lines_before"`
	ContextLinesAfter  int      `mapstructure:"context_lines_after"`
	OutputDirectory    string   `mapstructure:"output_directory"`
	JSONReportName     string   `mapstructure:"json_report_name"`
	MarkdownReportName string   `mapstructure:"markdown_report_name"`
	TimestampLayout    string   `mapstructure:"timestamp_layout"`
	ReportTitle        string   `mapstructure:"report_title"`
	ContextLanguage    string   `mapstructure:"context_language"`
}

// DefaultCommandConfiguration returns baseline configuration values for the scan command.
func DefaultCommandConfiguration() CommandConfiguration {
	defaultWindow := extraction.DefaultContextWindow()
	return CommandConfiguration{
		Extensions:         []string{defaultExtensionSolidityConstant, defaultExtensionJavaScriptConstant},
		ExcludedFiles:      []string{},
		ContextLinesBefore: defaultWindow.LinesBefore,
		ContextLinesAfter:  defaultWindow.LinesAfter,
		OutputDirectory:    defaultOutputDirectoryConstant,
		JSONReportName:     defaultJSONReportNameConstant,
		MarkdownReportName: defaultMarkdownReportNameConstant,
		TimestampLayout:    defaultTimestampLayoutConstant,
		ReportTitle:        defaultReportTitleConstant,
		ContextLanguage:    defaultContextLanguageConstant,
	}
}

// DefaultConfigurationValues flattens the default configuration into viper keys under prefix.
func DefaultConfigurationValues(prefix string) (map[string]any, error) {
	decodedDefaults := map[string]any{}
	if decodeError := mapstructure.Decode(DefaultCommandConfiguration(), &decodedDefaults); decodeError != nil {
		return nil, fmt.Errorf(defaultValuesDecodeTemplateConstant, decodeError)
	}

	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return decodedDefaults, nil
	}

	prefixedDefaults := make(map[string]any, len(decodedDefaults))
	for configurationKey, configurationValue := range decodedDefaults {
		prefixedDefaults[trimmedPrefix+configurationKeySeparatorConstant+configurationKey] = configurationValue
	}
	return prefixedDefaults, nil
}

// ScanSettings validates the configuration and converts it into scan settings.
// Blank values fall back to their defaults.
func (configuration CommandConfiguration) ScanSettings() (ScanSettings, error) {
	sanitized := configuration.sanitize()
	if sanitized.ContextLinesBefore < 0 || sanitized.ContextLinesAfter < 0 {
		return ScanSettings{}, errors.New(negativeContextLinesMessageConstant)
	}

	return ScanSettings{
		Extensions:        sanitized.Extensions,
		ExcludedFileNames: sanitized.ExcludedFiles,
		ContextWindow: extraction.ContextWindow{
			LinesBefore: sanitized.ContextLinesBefore,
			LinesAfter:  sanitized.ContextLinesAfter,
		},
		OutputDirectory:    sanitized.OutputDirectory,
		JSONReportName:     sanitized.JSONReportName,
		MarkdownReportName: sanitized.MarkdownReportName,
		ReportTitle:        sanitized.ReportTitle,
		TimestampLayout:    sanitized.TimestampLayout,
		ContextLanguage:    sanitized.ContextLanguage,
	}, nil
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.Extensions = sanitizeExtensions(configuration.Extensions)
	if len(sanitized.Extensions) == 0 {
		sanitized.Extensions = defaults.Extensions
	}
	sanitized.ExcludedFiles = sanitizeNames(configuration.ExcludedFiles)
	sanitized.OutputDirectory = valueOrDefault(configuration.OutputDirectory, defaults.OutputDirectory)
	sanitized.JSONReportName = valueOrDefault(configuration.JSONReportName, defaults.JSONReportName)
	sanitized.MarkdownReportName = valueOrDefault(configuration.MarkdownReportName, defaults.MarkdownReportName)
	sanitized.TimestampLayout = valueOrDefault(configuration.TimestampLayout, defaults.TimestampLayout)
	sanitized.ReportTitle = valueOrDefault(configuration.ReportTitle, defaults.ReportTitle)
	sanitized.ContextLanguage = valueOrDefault(configuration.ContextLanguage, defaults.ContextLanguage)

	return sanitized
}

func sanitizeExtensions(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, extension := range sanitizeNames(raw) {
		if !strings.HasPrefix(extension, extensionPrefixConstant) {
			extension = extensionPrefixConstant + extension
		}
		if _, duplicate := seen[extension]; duplicate {
			continue
		}
		seen[extension] = struct{}{}
		sanitized = append(sanitized, extension)
	}
	return sanitized
}

func sanitizeNames(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}

func valueOrDefault(value string, defaultValue string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return defaultValue
	}
	return trimmed
}
