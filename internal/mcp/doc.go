// Package mcp exposes the calculator as Model Context Protocol tools.
//
// Tools:
//
//   - press     apply a press script ("12+3=") to the shared session
//   - evaluate  evaluate one binary operation
//   - clear     reset the session
//   - display   show the current display
//
// The session state is also readable as the calcpad://state resource.
package mcp
