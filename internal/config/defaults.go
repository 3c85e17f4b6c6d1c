package config

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/mediadata-go/internal/domain"
)

// Default values
const (
	// Scan defaults
	DefaultRoot = "images"

	// Output defaults
	DefaultOutputFile = "media-data.js"
	DefaultVariable   = "MEDIA_DATA"
	DefaultIndent     = 4
	MaxIndent         = 8

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix is the prefix for environment overrides (MEDIADATA_SCAN_ROOT, ...)
	EnvPrefix = "MEDIADATA"
)

// DefaultExtensions returns a copy of the default image extension allow-list
func DefaultExtensions() []string {
	exts := make([]string, len(domain.ImageExtensions))
	copy(exts, domain.ImageExtensions)
	return exts
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mediadata"
	}
	return filepath.Join(home, ".mediadata")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Root:       DefaultRoot,
			Extensions: DefaultExtensions(),
		},
		Output: OutputConfig{
			File:     DefaultOutputFile,
			Variable: DefaultVariable,
			Indent:   DefaultIndent,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
