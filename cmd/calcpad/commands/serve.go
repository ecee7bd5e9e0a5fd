package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"calcpad/internal/calc"
	"calcpad/internal/web"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser calculator and its JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(web.Config{
				Addr:       addr,
				Calculator: calc.Local{},
				Logger:     wire.Logger,
			})
			fmt.Fprintf(cmd.ErrOrStderr(), "calcpad listening on %s\n", addr)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
