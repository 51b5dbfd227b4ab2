package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tafel/internal/controller"
	"github.com/javiermolinar/tafel/internal/logging"
	"github.com/javiermolinar/tafel/internal/store"
	"github.com/javiermolinar/tafel/internal/web"
)

func (a *App) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the departure board as a web page",
		Long: `Serve the LED board over HTTP.

The page shows the board, the clock and the platform number, and links to
every station direction. The selection is shared with the terminal board.`,
		Example: `  tafel serve
  tafel serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.config.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx, cmd.OutOrStdout(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr)")

	return cmd
}

func (a *App) runServe(ctx context.Context, out io.Writer, addr string) error {
	if err := logging.Init(a.debug, ""); err != nil {
		return err
	}
	defer logging.Close()

	st, err := store.Open(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	state := web.NewBoardState(a.layout(), a.config.Board.Rows)
	ctrl := controller.New(a.feed(), st, state, controller.FromConfig(a.config))
	defer ctrl.Close()

	sel := ctrl.Restore(ctx)
	fmt.Fprintf(out, "Showing %s, platform %d\n", sel.Name, sel.Platform)
	fmt.Fprintf(out, "Serving departure board on %s\n", serverURL(addr))

	return web.New(ctrl, state, a.config).ListenAndServe(ctx, addr)
}

// serverURL turns a listen address into a browsable URL.
func serverURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
