package commands

import (
	"github.com/spf13/cobra"

	"calcpad/internal/app"
)

// version is reported by the mcp server.
var version = "dev"

var (
	home      string
	logLevel  string
	serverURL string
	ephemeral bool
	wire      *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calcpad",
		Short:         "A four-function calculator",
		SilenceUsage:  true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				h, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = h
			}
			w, err := app.NewWire(app.Config{
				Home:      home,
				LogLevel:  logLevel,
				ServerURL: serverURL,
				Ephemeral: ephemeral,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default $"+app.HomeEnv+" or ~/.calcpad)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(pressCmd(), showCmd(), clearCmd(), evalCmd(), tuiCmd(), serveCmd(), mcpCmd())
	return root
}
