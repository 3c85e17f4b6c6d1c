package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/quantmind-br/mediadata-go/internal/config"
)

func scanForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("root").
				Title("Scan Directory").
				Description("Directory walked for image files").
				Value(&values.ScanRoot).
				Placeholder(config.DefaultRoot),

			huh.NewInput().
				Key("extensions").
				Title("Extensions").
				Description("Accepted extensions, compared case-insensitively").
				Value(&values.ScanExtensions).
				Placeholder(".png, .jpg, .jpeg, .gif, .webp, .svg").
				Validate(ValidateExtensions),
		),
	).WithTheme(formTheme())
}

func outputForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("file").
				Title("Output File").
				Description("Script file loaded by the web front end").
				Value(&values.OutputFile).
				Placeholder(config.DefaultOutputFile),

			huh.NewInput().
				Key("variable").
				Title("Variable Name").
				Description("Name of the constant holding the manifest").
				Value(&values.OutputVariable).
				Placeholder(config.DefaultVariable).
				Validate(ValidateIdentifier),

			huh.NewInput().
				Key("indent").
				Title("Indent").
				Description(fmt.Sprintf("Spaces per JSON nesting level (1-%d)", config.MaxIndent)).
				Value(&values.OutputIndent).
				Placeholder("4").
				Validate(ValidateIntRange(1, config.MaxIndent)),
		),
	).WithTheme(formTheme())
}

func loggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Options(
					huh.NewOption("Pretty (console)", "pretty"),
					huh.NewOption("JSON", "json"),
				).
				Value(&values.LogFormat),
		),
	).WithTheme(formTheme())
}
