package tui

import "github.com/charmbracelet/huh"

// Section is one menu row of the editor and the form that edits it
type Section struct {
	Name    string
	Summary string
	form    func(*ConfigValues) *huh.Form
}

// Sections lists the editable config sections in menu order. The save row follows them.
var Sections = [...]Section{
	{Name: "Scan", Summary: "Directory to walk and accepted image extensions", form: scanForm},
	{Name: "Output", Summary: "Generated file, variable name and indent", form: outputForm},
	{Name: "Logging", Summary: "Log level and format", form: loggingForm},
}
