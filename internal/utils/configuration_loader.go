package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
	configurationTargetMissingMessageConstant       = "configuration target must be provided"
)

// ConfigurationLoaderSettings describes where a ConfigurationLoader looks for configuration.
type ConfigurationLoaderSettings struct {
	ConfigurationName string
	ConfigurationType string
	EnvironmentPrefix string
	SearchPaths       []string
	EmbeddedContent   []byte
}

// ConfigurationLoader wraps Viper to load layered configuration.
//
// Precedence, lowest first: default values, embedded content, the configuration
// file, environment variables.
type ConfigurationLoader struct {
	settings               ConfigurationLoaderSettings
	environmentKeyReplacer *strings.Replacer
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader from the provided settings.
func NewConfigurationLoader(settings ConfigurationLoaderSettings) *ConfigurationLoader {
	duplicatedSettings := settings
	duplicatedSettings.SearchPaths = append([]string{}, settings.SearchPaths...)
	duplicatedSettings.EmbeddedContent = append([]byte{}, settings.EmbeddedContent...)

	return &ConfigurationLoader{
		settings:               duplicatedSettings,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// LoadConfiguration populates targetConfiguration. An explicit configurationFilePath
// must exist; without one, a missing configuration file in the search paths is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	if targetConfiguration == nil {
		return LoadedConfiguration{}, errors.New(configurationTargetMissingMessageConstant)
	}

	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.settings.ConfigurationName)
	viperInstance.SetConfigType(loader.settings.ConfigurationType)

	if len(loader.settings.EmbeddedContent) > 0 {
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.settings.EmbeddedContent)); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}
	}

	for _, searchPath := range loader.settings.SearchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	viperInstance.SetEnvPrefix(loader.settings.EnvironmentPrefix)
	viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	trimmedFilePath := strings.TrimSpace(configurationFilePath)
	if len(trimmedFilePath) > 0 {
		viperInstance.SetConfigFile(trimmedFilePath)
	}

	if readError := viperInstance.MergeInConfig(); readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if len(trimmedFilePath) > 0 || !errors.As(readError, &notFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if unmarshalError := viperInstance.Unmarshal(targetConfiguration); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}
