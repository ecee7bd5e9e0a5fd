// Package app wires application dependencies for the CLI.
//
// It builds the state store, the session service, the calculator used for
// presses (local or a remote calcpad server) and the logger from Config,
// exposing them via the Wire struct for commands to use.
package app
