package commands

import (
	"github.com/spf13/cobra"

	"calcpad/internal/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools on stdio",
		Long: `Serve the calculator over the Model Context Protocol on stdin/stdout.

Tools: press, evaluate, clear, display. Resource: calcpad://state.
Presses act on the same saved state as "calcpad press", unless
--ephemeral keeps a fresh state in memory for the life of the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.New(wire.Sessions, version, wire.Logger).ServeStdio()
		},
	}
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "keep the calculator state in memory only")
	return cmd
}
