package cli

import (
	"bytes"
	_ "embed"
)

// defaultCollectorConfiguration mirrors collector.DefaultCommandConfiguration
// and the common logging defaults.
//
//go:embed default_config.yaml
var defaultCollectorConfiguration []byte

// EmbeddedDefaultConfiguration returns a private copy of default_config.yaml
// together with the viper configuration type used to parse it.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultCollectorConfiguration), configurationTypeConstant
}
