package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ellieharper/otj/internal/cli/formatter"
	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/timecalc"
)

// entriesFilter holds the list flags for `otj entries`.
type entriesFilter struct {
	week    bool
	otjOnly bool
	limit   int
}

func (f *entriesFilter) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.week, "week", false, "Only entries from the current week (Sunday start)")
	fs.BoolVar(&f.otjOnly, "otj", false, "Only off-the-job entries")
	fs.IntVar(&f.limit, "limit", 0, "Maximum number of entries to show (0 = all)")
}

func (f *entriesFilter) apply(entries []domain.JournalEntry, now time.Time) []domain.JournalEntry {
	weekStart := domain.DateOf(timecalc.WeekStart(now))

	var out []domain.JournalEntry
	for _, e := range entries {
		if f.week && e.Date.Before(weekStart) {
			continue
		}
		if f.otjOnly && !e.IsOffTheJob {
			continue
		}
		out = append(out, e)
		if f.limit > 0 && len(out) == f.limit {
			break
		}
	}
	return out
}

func newEntriesCmd(app *App) *cobra.Command {
	var filter entriesFilter

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Entries.List(cmd.Context())
			if err != nil {
				return err
			}

			entries = filter.apply(entries, time.Now())

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, formatter.Dim("No entries."))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(out, formatter.FormatEntryLine(e, false))
			}
			return nil
		},
	}

	filter.register(cmd.Flags())
	return cmd
}
