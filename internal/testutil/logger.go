package testutil

import (
	"bytes"
	"testing"

	"github.com/quantmind-br/mediadata-go/internal/utils"
)

// NewTestLogger creates a JSON logger writing to the returned buffer
func NewTestLogger(t *testing.T) (*utils.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	return logger, &buf
}
