package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tafel/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  tafel config
  tafel config --print`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				printConfig(cmd.OutOrStdout(), a.config)
				return nil
			}
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the effective configuration and exit")

	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Board.Rows = promptInt(reader, out, "Board rows", cfg.Board.Rows)
	cfg.Board.StationWidth = promptInt(reader, out, "Station width (cells)", cfg.Board.StationWidth)
	cfg.Board.PollInterval = promptValue(reader, out, "Poll interval", cfg.Board.PollInterval)
	cfg.Board.TerminusInterval = promptValue(reader, out, "Terminus interval", cfg.Board.TerminusInterval)
	cfg.API.Sender = promptValue(reader, out, "API sender", cfg.API.Sender)
	cfg.API.Timeout = promptValue(reader, out, "API timeout", cfg.API.Timeout)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.LEDColor = promptValue(reader, out, "LED colour (#rrggbb)", cfg.UI.LEDColor)
	cfg.UI.Background = promptValue(reader, out, "Background (#rrggbb)", cfg.UI.Background)
	cfg.Server.Addr = promptValue(reader, out, "Web server address", cfg.Server.Addr)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[board]")
	fmt.Fprintf(out, "  rows              = %d\n", cfg.Board.Rows)
	fmt.Fprintf(out, "  station_width     = %d\n", cfg.Board.StationWidth)
	fmt.Fprintf(out, "  poll_interval     = %s\n", cfg.Board.PollInterval)
	fmt.Fprintf(out, "  terminus_interval = %s\n", cfg.Board.TerminusInterval)
	fmt.Fprintf(out, "  blink_interval    = %s\n", cfg.Board.BlinkInterval)
	fmt.Fprintln(out, "\n[api]")
	fmt.Fprintf(out, "  base_url          = %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  sender            = %s\n", cfg.API.Sender)
	fmt.Fprintf(out, "  timeout           = %s\n", cfg.API.Timeout)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path           = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  led_color         = %s\n", cfg.UI.LEDColor)
	fmt.Fprintf(out, "  background        = %s\n", cfg.UI.Background)
	fmt.Fprintln(out, "\n[server]")
	fmt.Fprintf(out, "  addr              = %s\n", cfg.Server.Addr)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		// empty input or EOF yields current, which always parses
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}
