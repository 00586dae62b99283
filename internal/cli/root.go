package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ellieharper/otj/internal/config"
	"github.com/ellieharper/otj/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Entries  service.EntryService
	Holidays service.HolidayService
	KSBs     service.KSBService

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "otj" command and registers all
// subcommands against the provided App. Running it with no subcommand
// opens the TUI on an interactive terminal, otherwise prints the status
// summary.
func NewRootCmd(app *App, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "otj",
		Short: "Off-the-job training journal for apprentices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app, cfg)
			}
			return runStatus(cmd, app, cfg)
		},
	}

	root.AddCommand(
		newStatusCmd(app, cfg),
		newEntriesCmd(app),
		newServeCmd(cfg),
	)

	return root
}

func runTUI(app *App, cfg config.Config) error {
	p := tea.NewProgram(newAppModel(app, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
