package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {

	t.Run("default logger", func(t *testing.T) {
		logger := NewDefaultLogger()
		require.NotNil(t, logger)
	})

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "json",
			Output: &buf,
		})
		logger.Info().Int("images", 3).Msg("done")
		assert.Contains(t, buf.String(), `"message":"done"`)
		assert.Contains(t, buf.String(), `"images":3`)
	})

	t.Run("pretty output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "pretty",
			Output: &buf,
		})
		logger.Info().Msg("pretty test")
		assert.Contains(t, buf.String(), "pretty test")
		assert.NotContains(t, buf.String(), "{")
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "warn",
			Format: "json",
			Output: &buf,
		})
		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  EffectiveLevel("error", true),
			Format: "json",
			Output: &buf,
		})
		logger.Debug().Msg("debug visible")
		assert.Contains(t, buf.String(), "debug visible")
	})
}

func TestEffectiveLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    string
	}{
		{name: "configured level kept", level: "warn", want: "warn"},
		{name: "verbose wins", level: "warn", verbose: true, want: "debug"},
		{name: "empty level kept", level: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveLevel(tt.level, tt.verbose))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Format: "json", Output: &buf})

	logger.WithComponent("manifest").WithPath("images").Info().Msg("walk")

	assert.Contains(t, buf.String(), `"component":"manifest"`)
	assert.Contains(t, buf.String(), `"path":"images"`)
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	logger.Error().Msg("discarded")
}
