package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantmind-br/mediadata-go/internal/config"
)

// ConfigValues holds form values that map to Config struct.
// Lists and numbers are stored as strings for form editing.
type ConfigValues struct {
	ScanRoot       string
	ScanExtensions string

	OutputFile     string
	OutputVariable string
	OutputIndent   string

	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		ScanRoot:       cfg.Scan.Root,
		ScanExtensions: strings.Join(cfg.Scan.Extensions, ", "),

		OutputFile:     cfg.Output.File,
		OutputVariable: cfg.Output.Variable,
		OutputIndent:   strconv.Itoa(cfg.Output.Indent),

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a validated Config
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	indent, err := parseIntOrDefault(v.OutputIndent, config.DefaultIndent)
	if err != nil {
		return nil, fmt.Errorf("invalid indent: %w", err)
	}

	if err := ValidateExtensions(v.ScanExtensions); err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Scan: config.ScanConfig{
			Root:       strings.TrimSpace(v.ScanRoot),
			Extensions: splitList(v.ScanExtensions),
		},
		Output: config.OutputConfig{
			File:     strings.TrimSpace(v.OutputFile),
			Variable: strings.TrimSpace(v.OutputVariable),
			Indent:   indent,
		},
		Logging: config.LoggingConfig{
			Level:  strings.ToLower(v.LogLevel),
			Format: strings.ToLower(v.LogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList splits on commas and whitespace, dropping empty items
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
