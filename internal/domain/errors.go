package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrRootNotFound indicates the directory to scan does not exist.
	// This is the one expected condition: callers report it and exit cleanly.
	ErrRootNotFound = errors.New("directory not found")

	// ErrWriteFailed indicates writing the generated file failed
	ErrWriteFailed = errors.New("write failed")

	// ErrStale indicates the generated file on disk is out of date
	ErrStale = errors.New("manifest is out of date")

	// ErrInvalidIdentifier indicates the output variable is not a valid JS identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// ScanError represents a filesystem fault during the directory walk
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError
func NewScanError(path string, err error) *ScanError {
	return &ScanError{
		Path: path,
		Err:  err,
	}
}

// WriteError represents a failure writing the generated file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsRootNotFound checks if an error reports a missing scan root
func IsRootNotFound(err error) bool {
	return errors.Is(err, ErrRootNotFound)
}
