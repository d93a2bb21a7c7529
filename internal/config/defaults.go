package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ogreyling/parsemock/internal/wire"
)

// DefaultConfig returns the default parsemock configuration. The listen
// address matches the fixed endpoint the wire contract names.
func DefaultConfig() *Config {
	return &Config{
		Listen:   wire.DefaultAddr,
		LogLevel: "info",
		Generator: Generator{
			OutDir:       "corpus",
			NumFiles:     5,
			LinesPerFile: 20,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
