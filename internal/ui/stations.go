package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tafel/internal/station"
)

// stationColumns is the fixed width of everything but the station name:
// indent, index, both RBL columns and the terminus marks.
const stationColumns = 26

func (a *App) stationsCmd() *cobra.Command {
	var line string

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List lines, stations and their RBLs",
		Example: `  tafel stations
  tafel stations --line u6`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines := station.Lines()
			if line != "" {
				l, ok := station.FindLine(line)
				if !ok {
					return fmt.Errorf("unknown line %q", line)
				}
				lines = []station.Line{l}
			}
			printStations(cmd.OutOrStdout(), lines, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Only list one line (u1, u2, u3, u4, u6)")

	return cmd
}

func printStations(out io.Writer, lines []station.Line, width int) {
	nameWidth := 0
	for _, l := range lines {
		for _, st := range l.Stations {
			nameWidth = max(nameWidth, runewidth.StringWidth(st.Name))
		}
	}
	nameWidth = max(min(nameWidth, width-stationColumns), 8)

	for i, l := range lines {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s  %s\n", formatLine(l.Name, l.Color),
			formatMuted(fmt.Sprintf("%s ↔ %s", l.First().Name, l.Last().Name)))

		for j, st := range l.Stations {
			name := runewidth.FillRight(runewidth.Truncate(st.Name, nameWidth, "…"), nameWidth)
			fmt.Fprintf(out, "  %2d  %s  %s %s\n", j, name,
				rblColumn("→", st.RBLs[0], st.Name == l.Last().Name),
				rblColumn("←", st.RBLs[1], st.Name == l.First().Name))
		}
	}
}

// rblColumn formats one direction; terminus platforms are muted.
func rblColumn(arrow string, rbl int, terminus bool) string {
	col := fmt.Sprintf("%s %-5d", arrow, rbl)
	if terminus {
		return formatMuted(strings.TrimRight(col, " ") + "*")
	}
	return col
}
