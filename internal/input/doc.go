// Package input maps what a user presses onto calculator events.
//
// Three vocabularies are supported: browser keyboard key names (FromKey),
// on-screen button labels (FromButton) and a compact one-rune-per-press
// script used by the command line and MCP adapters (ParseScript). Layout
// describes the on-screen button grid shared by the web and terminal front
// ends.
package input
