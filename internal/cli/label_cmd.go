package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hoursreport/internal/cli/formatter"
	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/importer"
	"github.com/spf13/cobra"
)

func newLabelCmd(app *App) *cobra.Command {
	var (
		configKey string
		date      string
	)

	cmd := &cobra.Command{
		Use:   "label --config KEY --date YYYY-MM-DD [DESCRIPTION...]",
		Short: "Show the part and category a session would get",
		Example: `  hoursreport label --config itp2 --date 2025-03-01 "report: wrote intro"
  hoursreport label -c webdev -d 2024-09-23 Peer review of group 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, err := resolveConfigKey(ctx, app, configKey)
			if err != nil {
				return err
			}
			cfg, err := app.Registry.MustGet(key)
			if err != nil {
				return err
			}
			if date == "" {
				return rerr.WithField(rerr.Inputf("--date is required"), "date")
			}
			t, err := importer.ParseTimestamp(date)
			if err != nil {
				return rerr.WithField(rerr.Inputf("invalid --date %q", date), "date")
			}

			day := domain.TruncateDate(t)
			description := importer.CleanDescription(strings.Join(args, " "))
			part := cfg.LabelSession(day, description)
			category, _ := cfg.Groupings().CategoryOf(part)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLabel(day, description, part, category))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configKey, "config", "c", "", "project config key")
	cmd.Flags().StringVarP(&date, "date", "d", "", "session date (YYYY-MM-DD or a CSV timestamp)")

	return cmd
}
