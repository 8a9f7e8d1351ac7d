package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/hoursreport/internal/cli/formatter"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		configKey string
		dataDir   string
		output    string
		totalLast bool
		open      bool
	)

	cmd := &cobra.Command{
		Use:   "generate [FILE...]",
		Short: "Build the hours workbook from CSV exports",
		Long: `Build the hours workbook. Without FILE arguments every *.csv file in the data
directory is used, in name order. Each file becomes one project titled after its
file name.`,
		Example: `  hoursreport generate --config itp2
  hoursreport generate --config webdev -o ~/Desktop/hours.xlsx alice.csv bob.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := app.settings()

			key, err := resolveConfigKey(ctx, app, configKey)
			if err != nil {
				return err
			}

			req := service.GenerateRequest{
				ConfigKey:       key,
				Files:           args,
				DataDir:         s.Report.DataDir,
				OutputPath:      s.Report.OutputName,
				TotalSheetFirst: s.Report.TotalSheetFirst && !totalLast,
				ReopenViewer:    s.Report.OpenViewer,
			}
			if cmd.Flags().Changed("data-dir") {
				req.DataDir = dataDir
			}
			if cmd.Flags().Changed("output") {
				req.OutputPath = output
			}
			if cmd.Flags().Changed("open") {
				req.ReopenViewer = open
			}

			res, err := app.Reports.Generate(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatReportResult(res.Run, res.SheetNames))
			errOut := cmd.ErrOrStderr()
			for _, w := range formatter.DroppedWarnings(res.Run) {
				fmt.Fprintln(errOut, w)
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(errOut, formatter.Warning(w))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configKey, "config", "c", "", "project config key (see 'configs list')")
	f.StringVar(&dataDir, "data-dir", "", "directory scanned for *.csv files when no FILE is given")
	f.StringVarP(&output, "output", "o", "", "output .xlsx path")
	f.BoolVar(&totalLast, "total-last", false, "place the Total sheet after the category sheets")
	f.BoolVar(&open, "open", false, "close a running spreadsheet app before writing and open the result")

	return cmd
}

// resolveConfigKey prefers the flag, then report.default_config, then an
// interactive picker.
func resolveConfigKey(ctx context.Context, app *App, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if def := app.settings().Report.DefaultConfig; def != "" {
		return def, nil
	}
	if app.Registry == nil {
		return "", rerr.Configf("no project configs registered")
	}
	if app.interactive() {
		return app.PickConfig(ctx, app.Registry.List())
	}
	return "", rerr.WithField(
		rerr.Configf("--config is required (available: %s)", strings.Join(app.Registry.Keys(), ", ")),
		"config")
}
