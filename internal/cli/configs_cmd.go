package cli

import (
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/cli/formatter"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/spf13/cobra"
)

func newConfigsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configs",
		Aliases: []string{"config"},
		Short:   "Browse and check project configs",
	}

	cmd.AddCommand(
		newConfigsListCmd(app),
		newConfigsShowCmd(app),
		newConfigsValidateCmd(),
	)

	return cmd
}

func newConfigsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered project configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Registry == nil || len(app.Registry.Keys()) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No project configs found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConfigList(app.Registry.List()))
			return nil
		},
	}
}

func newConfigsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY",
		Short: "Show a config's parts, categories and keyword rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Registry == nil {
				return rerr.Configf("no project configs registered")
			}
			cfg, err := app.Registry.MustGet(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConfig(cfg))
			return nil
		},
	}
}

func newConfigsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a JSON project config without registering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := projectconfig.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("%s is valid: %s (%d parts, %d categories)",
				args[0], def.Key(), len(def.Parts()), len(def.Groupings()))))
			return nil
		},
	}
}
