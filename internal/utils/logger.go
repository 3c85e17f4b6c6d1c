package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog so callers keep its fluent event API
type Logger struct {
	zerolog.Logger
}

// LoggerOptions selects the level, the encoding ("pretty" or "json") and the sink.
// A nil Output means stderr.
type LoggerOptions struct {
	Level  string
	Format string
	Output io.Writer
}

// NewLogger builds a timestamped logger from opts
func NewLogger(opts LoggerOptions) *Logger {
	sink := opts.Output
	if sink == nil {
		sink = os.Stderr
	}
	if opts.Format == "pretty" {
		// Colors only when writing to the real terminal
		sink = zerolog.ConsoleWriter{Out: sink, TimeFormat: time.Kitchen, NoColor: opts.Output != nil}
	}

	zl := zerolog.New(sink).Level(parseLogLevel(opts.Level)).With().Timestamp().Logger()
	return &Logger{Logger: zl}
}

// NewDefaultLogger logs info and above to stderr in pretty format
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerOptions{Level: "info", Format: "pretty"})
}

// NewNopLogger discards everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// EffectiveLevel returns "debug" when verbose is set and level otherwise
func EffectiveLevel(level string, verbose bool) string {
	if verbose {
		return "debug"
	}
	return level
}

// parseLogLevel maps the configured level name to zerolog, falling back to info
func parseLogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{Logger: l.Logger.With().Str(key, value).Logger()}
}

// WithComponent tags every event with the emitting package
func (l *Logger) WithComponent(component string) *Logger { return l.with("component", component) }

// WithPath tags every event with the file or directory it concerns
func (l *Logger) WithPath(path string) *Logger { return l.with("path", path) }
