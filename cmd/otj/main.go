package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/ellieharper/otj/internal/api"
	"github.com/ellieharper/otj/internal/cli"
	"github.com/ellieharper/otj/internal/config"
	"github.com/ellieharper/otj/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	client := api.NewClient(cfg.APIBaseURL)

	app := &cli.App{
		Entries:  service.NewEntryService(client),
		Holidays: service.NewHolidayService(client, cfg.ApprenticeID, cfg.DefaultAllowance),
		KSBs:     service.NewKSBService(client),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app, cfg)
	return rootCmd.ExecuteContext(ctx)
}
