package tui

import (
	"testing"

	"github.com/quantmind-br/mediadata-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_BuildForms(t *testing.T) {
	values := FromConfig(config.Default())
	for _, s := range Sections {
		assert.NotEmpty(t, s.Summary, s.Name)
		require.NotNil(t, s.form, s.Name)
		assert.NotNil(t, s.form(values), s.Name)
	}
}
