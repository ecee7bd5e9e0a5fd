package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wire.Sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !verbose {
				fmt.Fprintln(out, state.Display)
				return nil
			}
			fmt.Fprintf(out, "display:        %s\n", state.Display)
			fmt.Fprintf(out, "operand:        %s\n", state.Operand)
			fmt.Fprintf(out, "operation:      %s\n", state.Op)
			fmt.Fprintf(out, "awaiting entry: %t\n", state.AwaitingEntry)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the pending operand and operation too")
	return cmd
}
