// Package session runs calculator events against a persisted state.
//
// It loads the stored state (or starts from the initial one), applies the
// events through the state machine, persists the result and returns it.
package session
