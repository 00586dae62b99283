package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ellieharper/otj/internal/cli/formatter"
	"github.com/ellieharper/otj/internal/config"
	"github.com/ellieharper/otj/internal/progress"
)

func newStatusCmd(app *App, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show off-the-job progress against the weekly and annual targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app, cfg)
		},
	}
}

func runStatus(cmd *cobra.Command, app *App, cfg config.Config) error {
	ctx := cmd.Context()

	entries, err := app.Entries.List(ctx)
	if err != nil {
		return err
	}
	holiday, err := app.Holidays.Load(ctx)
	if err != nil {
		return err
	}

	snap := progress.Compute(entries, cfg.Targets(), holiday.Enabled, time.Now())

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatDashboard(snap, cfg.Targets(), holiday.Enabled))
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatHolidayCard(holiday))
	return nil
}
