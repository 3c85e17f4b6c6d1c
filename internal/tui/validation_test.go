package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid_string", input: "images", wantErr: false},
		{name: "empty_string", input: "", wantErr: true},
		{name: "whitespace_only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateIntRange(t *testing.T) {
	validate := ValidateIntRange(1, 8)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "in_range", input: "4"},
		{name: "lower_bound", input: "1"},
		{name: "upper_bound", input: "8"},
		{name: "empty_uses_default", input: ""},
		{name: "too_small", input: "0", wantErr: ErrInvalidRange},
		{name: "too_large", input: "9", wantErr: ErrInvalidRange},
		{name: "not_a_number", input: "four", wantErr: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "", wantErr: false},
		{input: "MEDIA_DATA", wantErr: false},
		{input: "$assets", wantErr: false},
		{input: "_private1", wantErr: false},
		{input: "1abc", wantErr: true},
		{input: "media-data", wantErr: true},
		{input: "a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExtensions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "comma_separated", input: ".png, .jpg"},
		{name: "space_separated", input: ".png .svg"},
		{name: "empty_uses_default", input: ""},
		{name: "missing_dot", input: ".png, jpg", wantErr: true},
		{name: "bare_dot", input: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtensions(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLogLevelAndFormat(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		assert.NoError(t, ValidateLogLevel(level), level)
	}
	assert.Error(t, ValidateLogLevel("verbose"))

	for _, format := range []string{"json", "pretty"} {
		assert.NoError(t, ValidateLogFormat(format), format)
	}
	assert.Error(t, ValidateLogFormat("xml"))
}
