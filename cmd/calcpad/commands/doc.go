// Package commands defines the calcpad CLI and wires dependencies for subcommands.
//
// Commands
//
//   - press   Press keys on the saved calculator and print the display
//   - show    Print the display, or the whole state with --verbose
//   - clear   Reset the saved calculator
//   - eval    Evaluate a single "a op b"
//   - tui     Run the interactive terminal calculator
//   - serve   Serve the browser calculator and its JSON API
//   - mcp     Serve the calculator as MCP tools on stdio
//
// # Implementation
//
// The root command resolves the home directory and builds a dependency graph
// (state store, session service, calculator, logger) before any subcommand
// runs. The calculator state persists in <home>/state.json between runs.
package commands
