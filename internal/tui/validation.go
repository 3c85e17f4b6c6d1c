package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quantmind-br/mediadata-go/internal/config"
)

// Validation error messages
var (
	ErrRequired      = errors.New("this field is required")
	ErrInvalidNumber = errors.New("must be a valid number")
	ErrInvalidRange  = errors.New("value out of valid range")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateIntRange validates that a string represents an integer within a range
func ValidateIntRange(min, max int) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return ErrInvalidNumber
		}
		if n < min || n > max {
			return fmt.Errorf("%w: must be between %d and %d", ErrInvalidRange, min, max)
		}
		return nil
	}
}

// ValidateIdentifier accepts an empty value (default) or a JavaScript identifier
func ValidateIdentifier(s string) error {
	if s == "" || config.IsIdentifier(s) {
		return nil
	}
	return fmt.Errorf("must be a JavaScript identifier (letters, digits, _ or $)")
}

// ValidateExtensions checks a comma or whitespace separated extension list
func ValidateExtensions(s string) error {
	for _, ext := range splitList(s) {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q: must start with a dot", ext)
		}
	}
	return nil
}

// ValidateLogLevel validates log level values
func ValidateLogLevel(s string) error {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: must be one of debug, info, warn, error")
}

// ValidateLogFormat validates log format values
func ValidateLogFormat(s string) error {
	switch strings.ToLower(s) {
	case "json", "pretty":
		return nil
	}
	return fmt.Errorf("invalid log format: must be json or pretty")
}
