package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/mediadata-go/internal/config"
)

// saveRow is the cursor position of the save entry below the sections
const saveRow = len(Sections)

// Options configures the editor
type Options struct {
	Config *config.Config
	// SavePath is shown to the user after saving
	SavePath   string
	SaveFunc   func(*config.Config) error
	Accessible bool
}

// Model is the bubbletea model of the configuration editor.
// At most one of form, confirming and finished is active; none means the menu.
type Model struct {
	opts   Options
	values *ConfigValues
	cursor int
	dirty  bool

	form       *huh.Form
	confirming bool
	finished   bool
	err        error
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return Model{opts: opts, values: FromConfig(cfg)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	k, ok := msg.(tea.KeyMsg)
	switch {
	case !ok:
		return m, nil
	case m.finished:
		return m, tea.Quit
	case m.confirming:
		return m.answerPrompt(k)
	}

	switch {
	case key.Matches(k, keys.Quit):
		if m.dirty {
			m.confirming = true
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(k, keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(k, keys.Down):
		m.cursor = min(m.cursor+1, saveRow)
	case key.Matches(k, keys.Save):
		return m.save()
	case key.Matches(k, keys.Edit):
		if m.cursor == saveRow {
			return m.save()
		}
		return m.open(Sections[m.cursor])
	}
	return m, nil
}

func (m Model) open(s Section) (tea.Model, tea.Cmd) {
	m.form = s.form(m.values).WithAccessible(m.opts.Accessible)
	return m, m.form.Init()
}

// updateForm forwards msg to the open form; a completed form marks the values dirty
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Back) {
		m.form = nil
		return m, nil
	}

	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.form = nil
		m.dirty = true
		return m, nil
	}
	return m, cmd
}

func (m Model) answerPrompt(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.Yes):
		m.confirming = false
		return m.save()
	case key.Matches(k, keys.No):
		return m, tea.Quit
	case key.Matches(k, keys.Cancel):
		m.confirming = false
	}
	return m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	m.finished = true
	cfg, err := m.values.ToConfig()
	if err == nil && m.opts.SaveFunc != nil {
		err = m.opts.SaveFunc(cfg)
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.dirty = false
	return m, nil
}

// Err returns the error that ended the session, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) View() string {
	var body string
	switch {
	case m.form != nil:
		body = m.form.View()
	case m.finished && m.err != nil:
		body = styles.fail.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress any key to exit."
	case m.finished:
		msg := "Configuration saved."
		if m.opts.SavePath != "" {
			msg = fmt.Sprintf("Configuration saved to %s.", m.opts.SavePath)
		}
		body = styles.ok.Render(msg) + "\n\nPress any key to exit."
	case m.confirming:
		body = styles.prompt.Render("You have unsaved changes.\n\nSave before quitting?\n\n" +
			helpLine(keys.Yes, keys.No, keys.Cancel))
	default:
		body = m.menu()
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.header.Render("mediadata configuration"), "", body)
}

func (m Model) menu() string {
	rows := make([]string, 0, saveRow+4)
	for i, s := range Sections {
		rows = append(rows, m.row(i, s.Name))
		if i == m.cursor {
			rows[i] += styles.hint.Render("  " + s.Summary)
		}
	}

	save := "Save Configuration"
	if m.dirty {
		save += " *"
	}
	rows = append(rows, "", m.row(saveRow, save), "",
		styles.hint.Render(helpLine(keys.Up, keys.Down, keys.Edit, keys.Save, keys.Quit)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) row(i int, label string) string {
	if i == m.cursor {
		return styles.cursor.Render("> " + label)
	}
	return "  " + label
}

// Run starts the editor and blocks until the user quits
func Run(opts Options) error {
	final, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
