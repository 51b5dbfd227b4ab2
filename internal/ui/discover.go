package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tafel/internal/wienerlinien"
)

func (a *App) discoverCmd() *cobra.Command {
	var (
		line  string
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Scan the monitor API for U-Bahn RBL numbers",
		Long: `Scan the known RBL blocks of the U-Bahn lines and print which stations
they serve, grouped as station directory entries.

Requests are spaced by --delay to stay under the API rate limit.`,
		Example: `  tafel discover
  tafel discover --line U6 --delay 500ms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ranges, err := discoveryRanges(line)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDiscover(ctx, cmd.OutOrStdout(), a.client(), ranges, delay)
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Only scan one line (U1, U2, U3, U4, U6)")
	cmd.Flags().DurationVar(&delay, "delay", wienerlinien.DefaultDiscoveryDelay, "Delay between requests")

	return cmd
}

func discoveryRanges(line string) ([]wienerlinien.Range, error) {
	if line == "" {
		return wienerlinien.URanges, nil
	}
	for _, r := range wienerlinien.URanges {
		if strings.EqualFold(r.Line, line) {
			return []wienerlinien.Range{r}, nil
		}
	}
	return nil, fmt.Errorf("unknown line %q", line)
}

func runDiscover(ctx context.Context, out io.Writer, c *wienerlinien.Client, ranges []wienerlinien.Range, delay time.Duration) error {
	for _, r := range ranges {
		fmt.Fprintf(out, "%s\n", formatHeader(fmt.Sprintf("Scanning %s (RBL %d-%d)", r.Line, r.Start, r.End)))

		mappings, err := c.Discover(ctx, r, delay, func(m wienerlinien.Mapping) {
			fmt.Fprintf(out, "  %s %s -> %s\n", formatFound(fmt.Sprintf("%d", m.RBL)), m.Station, formatMuted(m.Towards))
		})
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, formatWarn("  scan interrupted"))
		} else if err != nil {
			return fmt.Errorf("scanning %s: %w", r.Line, err)
		}

		if len(mappings) == 0 {
			fmt.Fprintln(out, formatMuted("  no stations found"))
		} else {
			fmt.Fprintln(out)
			for _, s := range wienerlinien.GroupByStation(mappings) {
				fmt.Fprintf(out, "  %s\n", s)
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(out)
	}
	return nil
}
