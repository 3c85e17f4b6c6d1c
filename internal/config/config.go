package config

import (
	"fmt"
	"regexp"

	"github.com/quantmind-br/mediadata-go/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan" yaml:"scan"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ScanConfig contains settings for the directory walk.
// Only Root has a CLI flag; Extensions is file or env only.
type ScanConfig struct {
	Root       string   `mapstructure:"root" yaml:"root"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// OutputConfig contains settings for the generated script file.
// Variable and Indent only shape the emitted script and have no CLI flags.
type OutputConfig struct {
	File     string `mapstructure:"file" yaml:"file"`
	Variable string `mapstructure:"variable" yaml:"variable"`
	Indent   int    `mapstructure:"indent" yaml:"indent"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// identifierRegex matches a plain ASCII JavaScript identifier
var identifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scan.Root == "" {
		c.Scan.Root = DefaultRoot
	}
	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = DefaultExtensions()
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.Output.Variable == "" {
		c.Output.Variable = DefaultVariable
	} else if !IsIdentifier(c.Output.Variable) {
		return fmt.Errorf("%w: %w",
			domain.NewValidationError("output.variable", fmt.Sprintf("%q must be a JavaScript identifier", c.Output.Variable)),
			domain.ErrInvalidIdentifier)
	}
	if c.Output.Indent < 1 || c.Output.Indent > MaxIndent {
		c.Output.Indent = DefaultIndent
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// IsIdentifier reports whether name can be declared with `const name = ...`
func IsIdentifier(name string) bool {
	return identifierRegex.MatchString(name)
}
