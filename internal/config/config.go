// Package config loads the parsemock harness configuration. Defaults
// reproduce the fixed wire contract, so running without a config file
// behaves exactly like the bare mock server.
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Listen    string    `yaml:"listen,omitempty" mapstructure:"listen"`
	LogLevel  string    `yaml:"log_level,omitempty" mapstructure:"log_level"`
	Generator Generator `yaml:"generator,omitempty" mapstructure:"generator"`
}

type Generator struct {
	OutDir       string `yaml:"out_dir,omitempty" mapstructure:"out_dir"`
	NumFiles     int    `yaml:"num_files,omitempty" mapstructure:"num_files"`
	LinesPerFile int    `yaml:"lines_per_file,omitempty" mapstructure:"lines_per_file"`
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("listen", defaults.Listen)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("generator.out_dir", defaults.Generator.OutDir)
	v.SetDefault("generator.num_files", defaults.Generator.NumFiles)
	v.SetDefault("generator.lines_per_file", defaults.Generator.LinesPerFile)
}

func Load(path string) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigFile(path)
	setDefaults(viperInstance)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")
	setDefaults(viperInstance)

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("invalid listen address '%s': %w", c.Listen, err)
	}
	if c.Generator.NumFiles < 0 {
		return fmt.Errorf("generator num_files must not be negative, got %d", c.Generator.NumFiles)
	}
	if c.Generator.LinesPerFile < 0 {
		return fmt.Errorf("generator lines_per_file must not be negative, got %d", c.Generator.LinesPerFile)
	}
	return nil
}
