package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calcpad/internal/input"
)

// press <script>...: press keys on the saved calculator.
func pressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press <script>...",
		Short: "Press keys and print the display",
		Long: `Press keys on the saved calculator and print the display.

Each character of the script is one press: digits and '.', the operators
+ - * / × ÷, '=' for equals and 'C' for clear. Arguments are joined, so
"calcpad press 12 + 3 =" and "calcpad press 12+3=" are the same.
Anything after the first key is a key, so "calcpad press 5 -3" works;
a script starting with '-' needs "--" first.`,
		Example: "  calcpad press 12+3=\n  calcpad press -- -3 ×2=",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.Join(args, "")
			ctx := cmd.Context()

			if serverURL == "" {
				evs, err := input.ParseScript(script)
				if err != nil {
					return err
				}
				state, err := wire.Sessions.Press(ctx, evs...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), state.Display)
				return nil
			}

			// The server is stateless: send the saved state along and keep
			// what comes back.
			state, err := wire.Sessions.Current(ctx)
			if err != nil {
				return err
			}
			next, err := wire.Calculator.Press(ctx, state, script)
			if err != nil {
				return err
			}
			if err := wire.Store.SaveState(next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next.Display)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&serverURL, "server", "", "calcpad server base URL (e.g. http://127.0.0.1:8080)")
	return cmd
}
