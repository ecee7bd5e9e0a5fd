package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"calcpad/internal/app"
	"calcpad/internal/web"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var addr, logLevel string
	cmd := &cobra.Command{
		Use:          "calcpad-server",
		Short:        "Serve the calcpad browser calculator and JSON API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := app.NewLogger(os.Stderr, logLevel)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "calcpad-server listening on %s\n", addr)
			return web.NewServer(web.Config{Addr: addr, Logger: logger}).Run(ctx)
		},
	}

	defaultAddr := os.Getenv("CALCPAD_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	return cmd
}
