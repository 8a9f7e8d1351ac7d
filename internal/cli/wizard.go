package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/cli/formatter"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// hoursHuhTheme returns a custom huh theme using the formatter palette.
func hoursHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// configOptions labels each config as "key — display name".
func configOptions(configs []projectconfig.ProjectConfig) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(configs))
	for _, c := range configs {
		label := c.Key()
		if c.DisplayName() != "" && c.DisplayName() != c.Key() {
			label = fmt.Sprintf("%s — %s", c.Key(), c.DisplayName())
		}
		options = append(options, huh.NewOption(label, c.Key()))
	}
	return options
}

// configSelectForm creates a huh form to select a project config.
func configSelectForm(configs []projectconfig.ProjectConfig, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which project config?").
				Description("Decides how sessions are split into parts and categories.").
				Options(configOptions(configs)...).
				Value(result),
		),
	).WithTheme(hoursHuhTheme()).WithShowHelp(false)
}

func pickConfigForm(ctx context.Context, configs []projectconfig.ProjectConfig) (string, error) {
	if len(configs) == 0 {
		return "", rerr.Configf("no project configs registered")
	}
	var key string
	if err := configSelectForm(configs, &key).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", rerr.Configf("no project config selected")
		}
		return "", rerr.Wrap(err, rerr.KindConfig, "selecting project config")
	}
	return key, nil
}
