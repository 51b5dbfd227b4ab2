package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tafel/internal/controller"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
)

type renderOptions struct {
	line    string
	station string
	dir     int
	svg     bool
	copy    bool
	german  bool
}

func (a *App) renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch departures once and print the board",
		Long: `Fetch the next departures for one platform and print the board.

Without --line and --station the default platform (Stephansplatz, U1 towards
Leopoldau) is used. Terminus platforms print the "do not board" message.`,
		Example: `  tafel render
  tafel render --line u4 --station Hietzing --dir 1
  tafel render --svg > board.svg
  tafel render --svg --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := resolveSelection(opts.line, opts.station, opts.dir)
			if err != nil {
				return err
			}
			return a.runRender(cmd.Context(), cmd.OutOrStdout(), sel, opts)
		},
	}

	cmd.Flags().StringVar(&opts.line, "line", "", "Line (u1, u2, u3, u4, u6)")
	cmd.Flags().StringVar(&opts.station, "station", "", "Station name on the line")
	cmd.Flags().IntVar(&opts.dir, "dir", 0, "Direction: 0 towards the last station, 1 towards the first")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "Print the board as an SVG document")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.german, "german", false, "Show the German terminus message")

	return cmd
}

// resolveSelection finds the platform named by the flags. Both line and
// station empty selects the default platform.
func resolveSelection(line, name string, dir int) (station.Selection, error) {
	if line == "" && name == "" {
		return station.Default(), nil
	}
	if line == "" || name == "" {
		return station.Selection{}, fmt.Errorf("--line and --station must be given together")
	}
	if dir != 0 && dir != 1 {
		return station.Selection{}, fmt.Errorf("--dir must be 0 or 1, got %d", dir)
	}
	l, i, ok := station.Find(line, name)
	if !ok {
		return station.Selection{}, fmt.Errorf("station %q not found on line %q", name, line)
	}
	dirs, err := l.Directions(i)
	if err != nil {
		return station.Selection{}, err
	}
	return dirs[dir].Selection(), nil
}

func (a *App) runRender(ctx context.Context, out io.Writer, sel station.Selection, opts renderOptions) error {
	board, err := a.renderBoard(ctx, sel, opts.german)
	if err != nil {
		return err
	}

	var text string
	if opts.svg {
		text = board.SVG(led.ColorsFor(a.config.UI.LEDColor, a.config.UI.Background)) + "\n"
	} else {
		text = formatBoard(sel, board)
	}
	fmt.Fprint(out, text)

	if opts.copy {
		if err := clipboard.WriteAll(strings.TrimRight(text, "\n")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	return nil
}

func (a *App) renderBoard(ctx context.Context, sel station.Selection, german bool) (led.Board, error) {
	rows := a.config.Board.Rows
	if sel.Terminus {
		return controller.TerminusBoard(a.layout(), rows, german), nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout())
	defer cancel()
	deps, err := a.feed().FetchDepartures(ctx, []int{sel.RBL})
	if err != nil {
		return nil, fmt.Errorf("fetching departures for %s: %w", sel.Name, err)
	}
	return a.layout().RenderBoard(rows, deps), nil
}

// formatBoard prints the board as framed LED text under a header.
func formatBoard(sel station.Selection, board led.Board) string {
	var sb strings.Builder

	header := sel.Name
	if l, ok := station.LineOf(sel); ok {
		header = formatLine(l.Name, l.Color) + " " + sel.Name
	}
	fmt.Fprintf(&sb, "%s  %s\n", header, formatMuted(fmt.Sprintf("Gleis %d", sel.Platform)))

	width := 0
	for _, line := range board.Lines() {
		width = max(width, len([]rune(line)))
	}
	border := strings.Repeat("─", width+2)
	sb.WriteString("┌" + border + "┐\n")
	for _, line := range board.Lines() {
		pad := width - len([]rune(line))
		sb.WriteString("│ " + formatLED(line) + strings.Repeat(" ", pad) + " │\n")
	}
	sb.WriteString("└" + border + "┘\n")
	return sb.String()
}
