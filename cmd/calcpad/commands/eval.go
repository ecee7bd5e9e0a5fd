package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcpad/internal/domain"
)

// eval <a> <op> <b>: one operation, independent of the saved state.
func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a single operation",
		Long: `Evaluate "a op b" and print the result. op is one of + - × ÷ or
add, subtract, multiply, divide. Dividing by zero prints "Error"; operands
that are not numbers print "NaN". A negative first operand needs "--".`,
		Example: "  calcpad eval 7 divide 2\n  calcpad eval -- -1 + 2",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := domain.ParseOperation(args[1])
			if err != nil {
				return err
			}
			if op == domain.OpNone {
				return fmt.Errorf("%w: %q", domain.ErrUnknownOperation, args[1])
			}
			result, err := wire.Calculator.Evaluate(cmd.Context(), args[0], args[2], op)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
