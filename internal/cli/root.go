package cli

import (
	"context"

	"github.com/alexanderramin/hoursreport/internal/config"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/alexanderramin/hoursreport/internal/service"
	"github.com/spf13/cobra"
)

// App holds the settings, registry and services used by CLI commands.
type App struct {
	Settings *config.Settings
	Registry *projectconfig.Registry
	Reports  service.ReportService
	// History is nil when run history is disabled or unavailable.
	History service.HistoryService

	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
	// PickConfig asks the user for a project config. Defaults to a huh form.
	PickConfig func(ctx context.Context, configs []projectconfig.ProjectConfig) (string, error)

	// Setup, when set, loads settings and wires the fields above before any
	// command runs. Tests leave it nil and fill the fields directly.
	Setup func(opts GlobalOptions) error
}

// GlobalOptions are the persistent root flags.
type GlobalOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

func (a *App) settings() *config.Settings {
	if a.Settings == nil {
		a.Settings = config.Default()
	}
	return a.Settings
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "hoursreport" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts GlobalOptions

	root := &cobra.Command{
		Use:   "hoursreport",
		Short: "Turn time-tracking exports into a classified hours workbook",
		Long: `hoursreport reads time-tracking CSV exports (startTime, duration, description),
assigns every session to a project part, and writes an .xlsx workbook with one
sheet per project category plus a Total overview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config-file", "", "settings file (default $XDG_CONFIG_HOME/hoursreport/config.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format: console or json")

	if app.PickConfig == nil {
		app.PickConfig = pickConfigForm
	}

	root.AddCommand(
		newGenerateCmd(app),
		newConfigsCmd(app),
		newLabelCmd(app),
		newHistoryCmd(app),
	)

	return root
}
