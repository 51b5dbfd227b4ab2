package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/controller"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/tui"
	"github.com/javiermolinar/tafel/internal/wienerlinien"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	// fetcher replaces the Wiener Linien client, for tests.
	fetcher controller.Fetcher
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "tafel",
		Short: "A Vienna U-Bahn departure board",
		Long: `Tafel renders the LED departure boards of Vienna's U-Bahn platforms.

It polls the Wiener Linien real-time monitor for the selected platform and
paints the next departures as a dot-matrix display, in the terminal or in
the browser.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.stationsCmd())
	a.root.AddCommand(a.discoverCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tafel %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// client builds the departure feed client from the config.
func (a *App) client() *wienerlinien.Client {
	return wienerlinien.New(wienerlinien.Options{
		BaseURL: a.config.API.BaseURL,
		Sender:  a.config.API.Sender,
		Timeout: a.config.Timeout(),
		Limit:   a.config.Board.Rows,
	})
}

func (a *App) feed() controller.Fetcher {
	if a.fetcher != nil {
		return a.fetcher
	}
	return a.client()
}

func (a *App) layout() led.Layout {
	return led.Layout{StationWidth: a.config.Board.StationWidth}
}
