package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/memfs/internal/util"
)

// Verbosity levels accepted on the CLI and in config files. Merge maps them
// onto internal log levels, clamping out-of-range values.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultLogLvl is the global log level applied when none is configured
	DefaultLogLvl = util.InfoLevel

	// DefaultTreeIndent is the number of spaces per depth level in tree dumps
	DefaultTreeIndent = 2
)

// Config contains runtime configuration values for the in-memory filesystem.
type Config struct {
	LogLvl     util.LogLevel // Global log level (Default info)
	TreeIndent int           // Spaces per depth level in tree dumps (Default 2)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	LogLvl     *int `yaml:"verbose,omitempty" json:"verbose,omitempty"` // verbosity 1 (error) to 5 (trace)
	TreeIndent *int `yaml:"tree_indent,omitempty" json:"tree_indent,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:     DefaultLogLvl,
		TreeIndent: DefaultTreeIndent,
	}
}

// NewConfig creates a Config from defaults with the override applied.
// A nil override yields all defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		verbose := *override.LogLvl
		if verbose < ErrorVerbose {
			verbose = ErrorVerbose
		}
		if verbose > TraceVerbose {
			verbose = TraceVerbose
		}
		lvls := [...]util.LogLevel{
			util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel,
		}
		c.LogLvl = lvls[verbose-1]
	}
	if override.TreeIndent != nil {
		c.TreeIndent = *override.TreeIndent
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
