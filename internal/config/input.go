package config

import (
	"fmt"
	"os"

	"github.com/rpgo/calculator/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the calculator's settings file.
type Configuration struct {
	Precision decimal.Context `yaml:"precision" json:"precision"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// OutputConfig selects the default report format.
type OutputConfig struct {
	Format string `yaml:"format" json:"format"`
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file. Settings the
// file leaves out keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML document.
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	config := ip.CreateExampleConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := config.Precision.Validate(); err != nil {
		return fmt.Errorf("precision: %w", err)
	}
	if config.Precision.DecimalPlaces > 100 {
		return fmt.Errorf("precision: decimal places must be at most 100")
	}

	if !validLevels[config.Logging.Level] {
		return fmt.Errorf("logging: invalid level %q", config.Logging.Level)
	}
	if !validFormats[config.Logging.Format] {
		return fmt.Errorf("logging: invalid format %q", config.Logging.Format)
	}

	if config.Output.Format == "" {
		return fmt.Errorf("output: format is required")
	}

	return nil
}

// CreateExampleConfiguration creates the default configuration
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	return &Configuration{
		Precision: decimal.DefaultContext(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "console",
		},
	}
}
