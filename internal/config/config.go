// Package config loads the optional .keymap-tools.yml file that tunes
// grid geometry and the external formatter. Both tools run fine with no
// config file at all; every setting has a built-in default.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/divsmith/zmk-keymap-tools/internal/fs"
	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
)

const (
	// ConfigFile is the config file name looked up in the working directory.
	ConfigFile = ".keymap-tools.yml"
	// ConfigEnvVar overrides the config file location.
	ConfigEnvVar = "KEYMAP_TOOLS_CONFIG"

	// DefaultFormatterCommand is the external formatter piped over the
	// grid output when none is configured.
	DefaultFormatterCommand = "clang-format"
)

// GridConfig controls the bindings grid geometry.
type GridConfig struct {
	Columns    int `yaml:"columns"`
	FieldWidth int `yaml:"fieldWidth"`
}

// FormatterConfig controls the external post-processing formatter.
type FormatterConfig struct {
	Command  string   `yaml:"command"`
	Args     []string `yaml:"args"`
	Disabled bool     `yaml:"disabled"`
}

type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Formatter FormatterConfig `yaml:"formatter"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Columns:    keymap.DefaultColumns,
			FieldWidth: keymap.DefaultFieldWidth,
		},
		Formatter: FormatterConfig{
			Command: DefaultFormatterCommand,
		},
	}
}

// Load reads and parses the config file at path. Zero-valued settings are
// filled with defaults. A missing file is an error at this level: the
// caller asked for this path explicitly.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &MissingConfigError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Resolve finds and loads the configuration for the current invocation.
// Precedence: explicit path, then the ConfigEnvVar environment variable,
// then ConfigFile in the working directory, then built-in defaults. Only
// an explicitly named file is required to exist.
func Resolve(explicitPath string, env fs.EnvProvider) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	if envPath := env.Get(ConfigEnvVar); envPath != "" {
		return Load(envPath)
	}
	if _, err := os.Stat(ConfigFile); err == nil {
		return Load(ConfigFile)
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Columns == 0 {
		c.Grid.Columns = keymap.DefaultColumns
	}
	if c.Grid.FieldWidth == 0 {
		c.Grid.FieldWidth = keymap.DefaultFieldWidth
	}
	if c.Formatter.Command == "" {
		c.Formatter.Command = DefaultFormatterCommand
	}
}

// Validate bounds-checks the configuration. Call after any flag overrides
// have been applied.
func (c *Config) Validate() error {
	if c.Grid.Columns < 1 {
		return &InvalidGridValueError{Property: "grid.columns", Value: c.Grid.Columns}
	}
	if c.Grid.FieldWidth < 1 {
		return &InvalidGridValueError{Property: "grid.fieldWidth", Value: c.Grid.FieldWidth}
	}
	return nil
}
