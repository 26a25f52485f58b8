package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/audittags/cmd/cli"
	"github.com/temirov/audittags/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	readmeSnippetTestNameConstant    = "readme_collector_configuration"
	readmeSnippetTemporaryPattern    = "readme-config-*.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	unexpectedKeyMessageTemplate     = "unexpected collector key %s"
	readmeEnvironmentPrefixConstant  = "READMEAUDITTAGS"
	readmeConfigurationNameConstant  = "config"
	readmeConfigurationTypeConstant  = "yaml"
	defaultTempDirectoryRootConstant = ""
)

var recognizedCollectorKeys = map[string]struct{}{
	"extensions":           {},
	"excluded_files":       {},
	"context_lines_before": {},
	"context_lines_after":  {},
	"output_directory":     {},
	"json_report_name":     {},
	"markdown_report_name": {},
	"timestamp_layout":     {},
	"report_title":         {},
	"context_language":     {},
}

type readmeApplicationConfiguration struct {
	Tools struct {
		Collector map[string]any `yaml:"collector"`
	} `yaml:"tools"`
}

func TestReadmeCollectorConfigurationParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	testInstance.Run(readmeSnippetTestNameConstant, func(subtest *testing.T) {
		tempFile, tempFileError := os.CreateTemp(defaultTempDirectoryRootConstant, readmeSnippetTemporaryPattern)
		require.NoError(subtest, tempFileError)
		subtest.Cleanup(func() {
			require.NoError(subtest, os.Remove(tempFile.Name()))
		})

		_, writeError := tempFile.WriteString(snippetContent)
		require.NoError(subtest, writeError)
		require.NoError(subtest, tempFile.Close())

		var rawConfiguration readmeApplicationConfiguration
		require.NoError(subtest, yaml.Unmarshal([]byte(snippetContent), &rawConfiguration))
		require.NotEmpty(subtest, rawConfiguration.Tools.Collector)
		for collectorKey := range rawConfiguration.Tools.Collector {
			_, recognized := recognizedCollectorKeys[collectorKey]
			require.Truef(subtest, recognized, unexpectedKeyMessageTemplate, collectorKey)
		}

		embeddedContent, embeddedType := cli.EmbeddedDefaultConfiguration()
		loader := utils.NewConfigurationLoader(utils.ConfigurationLoaderSettings{
			ConfigurationName: readmeConfigurationNameConstant,
			ConfigurationType: readmeConfigurationTypeConstant,
			EnvironmentPrefix: readmeEnvironmentPrefixConstant,
			EmbeddedContent:   embeddedContent,
		})
		require.Equal(subtest, readmeConfigurationTypeConstant, embeddedType)

		var applicationConfiguration cli.ApplicationConfiguration
		_, loadError := loader.LoadConfiguration(tempFile.Name(), map[string]any{}, &applicationConfiguration)
		require.NoError(subtest, loadError)

		scanSettings, settingsError := applicationConfiguration.Tools.Collector.ScanSettings()
		require.NoError(subtest, settingsError)
		require.Contains(subtest, scanSettings.Extensions, ".ts")
		require.Contains(subtest, scanSettings.ExcludedFileNames, "hardhat.config.js")
		require.Equal(subtest, "reports", scanSettings.OutputDirectory)
		require.Equal(subtest, "January 02, 2006, 15:04:05", scanSettings.TimestampLayout)
	})
}
