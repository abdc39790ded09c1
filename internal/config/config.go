// =============================================================================
// IPFIX Element XML Maker - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default that reproduces the behaviour of running the tool with no
// arguments: read elements2.txt from the working directory, write the
// document to standard output, stop at the first short row, no escaping.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input formats.
const (
	FormatAuto = "auto"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Malformed-row policies.
const (
	// OnMalformedStop halts processing at the first row with fewer than four
	// fields. The closing root tag is still written.
	OnMalformedStop = "stop"

	// OnMalformedSkip ignores the short row and continues with the next one.
	OnMalformedSkip = "skip"
)

// StdoutOutput is the Output value that selects standard output.
const StdoutOutput = "-"

// DefaultInputFile is read when neither the config file nor the command line
// names an input.
const DefaultInputFile = "elements2.txt"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the converter settings.
type Config struct {
	// InputFile is the path of the element definitions.
	// Default: "elements2.txt"
	InputFile string `yaml:"input_file"`

	// InputFormat is one of "auto", "csv" or "xlsx". With "auto" the format
	// is chosen from the file extension.
	// Default: "auto"
	InputFormat string `yaml:"input_format"`

	// Output is "-" for standard output or a file path. The placeholders
	// {uuid}, {timestamp}, {date} and {input} are expanded.
	// Default: "-"
	Output string `yaml:"output"`

	// Escape replaces XML special characters in element values with
	// entities. The legacy output writes values raw.
	// Default: false
	Escape bool `yaml:"escape"`

	// OnMalformed is "stop" or "skip".
	// Default: "stop"
	OnMalformed string `yaml:"on_malformed"`

	// LogLevel controls the verbosity of logging on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file. An empty path returns the
// defaults.
//
// PARAMETERS:
//   - configPath: The path to the configuration file, or "".
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or holds invalid values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = FormatAuto
	}
	if cfg.Output == "" {
		cfg.Output = StdoutOutput
	}
	if cfg.OnMalformed == "" {
		cfg.OnMalformed = OnMalformedStop
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.InputFormat {
	case FormatAuto, FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("unknown input_format %q (want auto, csv or xlsx)", c.InputFormat)
	}

	switch c.OnMalformed {
	case OnMalformedStop, OnMalformedSkip:
	default:
		return fmt.Errorf("unknown on_malformed %q (want stop or skip)", c.OnMalformed)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}

// ResolveFormat returns the concrete input format, resolving "auto" from the
// input file extension.
func (c *Config) ResolveFormat() string {
	if c.InputFormat != FormatAuto {
		return c.InputFormat
	}
	if strings.EqualFold(filepath.Ext(c.InputFile), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}
