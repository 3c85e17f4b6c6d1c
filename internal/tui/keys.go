package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up, Down, Edit, Save, Quit key.Binding
	// Back leaves an open form without applying it
	Back key.Binding
	// Yes, No and Cancel answer the unsaved changes prompt
	Yes, No, Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:   key.NewBinding(key.WithKeys("esc")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "save and quit")),
	No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "discard")),
	Cancel: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "keep editing")),
}

// helpLine renders bindings as "key desc • key desc"
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
