package collector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/audittags/internal/tags"
)

const (
	commandUseConstant                   = "audit-tags <repository-path>"
	commandShortDescriptionConstant      = "Collect audit annotations into JSON and Markdown reports"
	commandLongDescriptionConstant       = "audit-tags scans a source tree for // @audit comments (questions, issues, TODOs, and more) and writes audit_tag_report.json and audit_tag_report.md to the working directory."
	missingRepositoryPathMessageConstant = "exactly one repository path is required"
	configurationErrorTemplateConstant   = "invalid collector configuration: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the current collector configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the scan cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Discoverer            FileDiscoverer
	FileSystem            FileSystem
	Registry              *tags.Registry
	Clock                 Clock
	// ExecutableName is excluded from scanning; it defaults to the running binary's file name.
	ExecutableName string
}

// Build constructs the cobra command for the audit tag scan.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  builder.validateArguments,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) validateArguments(command *cobra.Command, arguments []string) error {
	if len(arguments) == 1 && len(strings.TrimSpace(arguments[0])) > 0 {
		return nil
	}
	if helpError := builder.displayCommandHelp(command); helpError != nil {
		return helpError
	}
	return errors.New(missingRepositoryPathMessageConstant)
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(arguments)
	if optionsError != nil {
		return optionsError
	}

	service := NewService(
		builder.Discoverer,
		builder.FileSystem,
		builder.Registry,
		builder.resolveLogger(),
		command.OutOrStdout(),
		builder.Clock,
	)

	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) parseOptions(arguments []string) (CommandOptions, error) {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	settings, settingsError := configuration.ScanSettings()
	if settingsError != nil {
		return CommandOptions{}, fmt.Errorf(configurationErrorTemplateConstant, settingsError)
	}

	if executableName := builder.resolveExecutableName(); len(executableName) > 0 {
		settings.ExcludedFileNames = append(settings.ExcludedFileNames, executableName)
	}

	return CommandOptions{
		RepositoryPath: strings.TrimSpace(arguments[0]),
		Settings:       settings,
	}, nil
}

func (builder *CommandBuilder) resolveExecutableName() string {
	if len(strings.TrimSpace(builder.ExecutableName)) > 0 {
		return strings.TrimSpace(builder.ExecutableName)
	}
	executablePath, executableError := os.Executable()
	if executableError != nil {
		return ""
	}
	return filepath.Base(executablePath)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
