package cli

import (
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/cli/formatter"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		limit     int
		configKey string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent report runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return historyDisabled()
			}
			if limit <= 0 {
				return rerr.WithField(rerr.Inputf("--limit must be positive, got %d", limit), "limit")
			}
			runs, err := app.History.Recent(cmd.Context(), configKey, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRuns(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to show")
	cmd.Flags().StringVarP(&configKey, "config", "c", "", "only runs of this project config")

	cmd.AddCommand(newHistoryShowCmd(app))
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one report run with its projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return historyDisabled()
			}
			run, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRun(run))
			return nil
		},
	}
}

func historyDisabled() error {
	return rerr.WithField(rerr.Configf("run history is disabled (set history.enabled: true)"), "history.enabled")
}
