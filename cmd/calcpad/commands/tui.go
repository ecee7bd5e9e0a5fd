package commands

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"calcpad/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wire.Sessions.Current(cmd.Context())
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			tui.New(screen, &state, wire.Logger).Run()
			screen.Fini()

			return wire.Store.SaveState(state)
		},
	}
}
