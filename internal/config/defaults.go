package config

import (
	_ "embed"
)

//go:embed defaults/tetrix.yaml
var defaultTetrixYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrixYAML
}
