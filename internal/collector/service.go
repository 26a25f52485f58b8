package collector

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/audittags/internal/extraction"
	"github.com/temirov/audittags/internal/report"
	"github.com/temirov/audittags/internal/tags"
)

const (
	repositoryPathInvalidTemplateConstant = "repository path is not a directory: %s"
	repositoryPathStatTemplateConstant    = "unable to access repository path %s: %w"
	scanInterruptedTemplateConstant       = "scan interrupted: %w"
	reportSummaryTemplateConstant         = "wrote %d annotations to %s\n"
	scanStartedMessageConstant            = "audit tag scan started"
	fileScannedMessageConstant            = "file scanned"
	scanCompletedMessageConstant          = "audit tag scan completed"
	reportWrittenMessageConstant          = "report written"
	logFieldRepositoryConstant            = "repository"
	logFieldExtensionsConstant            = "extensions"
	logFieldFileConstant                  = "file"
	logFieldAnnotationCountConstant       = "annotations"
	logFieldFileCountConstant             = "files"
	logFieldReportPathConstant            = "report_path"
)

// Service coordinates discovery, extraction, aggregation, and reporting.
type Service struct {
	discoverer   FileDiscoverer
	fileSystem   FileSystem
	registry     *tags.Registry
	logger       *zap.Logger
	outputWriter io.Writer
	clock        Clock
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer FileDiscoverer, fileSystem FileSystem, registry *tags.Registry, logger *zap.Logger, outputWriter io.Writer, clock Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	return &Service{
		discoverer:   discoverer,
		fileSystem:   ResolveFileSystem(fileSystem),
		registry:     ResolveRegistry(registry),
		logger:       logger,
		outputWriter: outputWriter,
		clock:        ResolveClock(clock),
	}
}

// Run scans the repository and writes both reports. The JSON report is written
// before the Markdown report; any error aborts the run immediately.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (Summary, error) {
	if statError := service.validateRepositoryPath(options.RepositoryPath); statError != nil {
		return Summary{}, statError
	}

	settings := options.Settings
	discoverer := ResolveFileDiscoverer(service.discoverer, settings)

	service.logger.Info(
		scanStartedMessageConstant,
		zap.String(logFieldRepositoryConstant, options.RepositoryPath),
		zap.Strings(logFieldExtensionsConstant, settings.Extensions),
	)

	candidateFiles, discoveryError := discoverer.DiscoverFiles(options.RepositoryPath)
	if discoveryError != nil {
		return Summary{}, discoveryError
	}

	extractor := extraction.NewExtractor(service.fileSystem, service.registry, settings.ContextWindow)
	aggregator := &Aggregator{}
	for _, candidateFile := range candidateFiles {
		if contextError := executionContext.Err(); contextError != nil {
			return Summary{}, fmt.Errorf(scanInterruptedTemplateConstant, contextError)
		}

		records, extractError := extractor.ExtractFile(candidateFile)
		if extractError != nil {
			return Summary{}, extractError
		}
		aggregator.Append(records)

		service.logger.Debug(
			fileScannedMessageConstant,
			zap.String(logFieldFileConstant, candidateFile),
			zap.Int(logFieldAnnotationCountConstant, len(records)),
		)
	}

	service.logger.Info(
		scanCompletedMessageConstant,
		zap.Int(logFieldFileCountConstant, len(candidateFiles)),
		zap.Int(logFieldAnnotationCountConstant, aggregator.Len()),
	)

	summary := Summary{
		FilesScanned:       len(candidateFiles),
		Annotations:        aggregator.Len(),
		JSONReportPath:     filepath.Join(settings.OutputDirectory, settings.JSONReportName),
		MarkdownReportPath: filepath.Join(settings.OutputDirectory, settings.MarkdownReportName),
	}

	if publishError := service.publishReports(aggregator.Records(), settings, summary); publishError != nil {
		return Summary{}, publishError
	}

	fmt.Fprintf(service.outputWriter, reportSummaryTemplateConstant, summary.Annotations, summary.JSONReportPath)
	fmt.Fprintf(service.outputWriter, reportSummaryTemplateConstant, summary.Annotations, summary.MarkdownReportPath)

	return summary, nil
}

func (service *Service) validateRepositoryPath(repositoryPath string) error {
	fileInfo, statError := service.fileSystem.Stat(repositoryPath)
	if statError != nil {
		return fmt.Errorf(repositoryPathStatTemplateConstant, repositoryPath, statError)
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf(repositoryPathInvalidTemplateConstant, repositoryPath)
	}
	return nil
}

func (service *Service) publishReports(records []extraction.Record, settings ScanSettings, summary Summary) error {
	reportWriter := report.NewWriter(service.fileSystem)

	jsonContent, renderError := report.RenderJSON(records)
	if renderError != nil {
		return renderError
	}
	if writeError := reportWriter.Write(summary.JSONReportPath, jsonContent); writeError != nil {
		return writeError
	}
	service.logger.Info(reportWrittenMessageConstant, zap.String(logFieldReportPathConstant, summary.JSONReportPath))

	markdownOptions := report.MarkdownOptions{
		Title:           settings.ReportTitle,
		TimestampLayout: settings.TimestampLayout,
		ContextLanguage: settings.ContextLanguage,
		GeneratedAt:     service.clock.Now(),
	}
	markdownContent := report.RenderMarkdown(records, service.registry.Categories(), markdownOptions)
	if writeError := reportWriter.Write(summary.MarkdownReportPath, markdownContent); writeError != nil {
		return writeError
	}
	service.logger.Info(reportWrittenMessageConstant, zap.String(logFieldReportPathConstant, summary.MarkdownReportPath))

	return nil
}
