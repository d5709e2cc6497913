// Package system provides infrastructure for system-level configuration.
// This covers the user config file (~/.deckprops/config.yaml) holding
// output and check defaults.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.deckprops/config.yaml).
// This is user-level configuration separate from entity documents.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Check  CheckConfig  `yaml:"check"`
}

// OutputConfig sets report rendering defaults.
type OutputConfig struct {
	// Format is one of table, json, yaml
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
	Indent bool   `yaml:"indent"`
}

// CheckConfig sets check command defaults.
type CheckConfig struct {
	// Filter is an expression applied to valid entities
	Filter string   `yaml:"filter"`
	Kinds  []string `yaml:"kinds"`
	Lint   bool     `yaml:"lint"`
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
			Color:  true,
			Indent: true,
		},
		Check: CheckConfig{
			Kinds: []string{},
		},
	}
}

// DefaultConfigPath returns ~/.deckprops/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".deckprops", "config.yaml"), nil
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Keys missing from the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	return config, nil
}
