package interfaces

import domaintypes "calcpad/internal/domain/types"

// StateStore persists a single calculator state between runs.
type StateStore interface {
	SaveState(state domaintypes.State) error
	LoadState() (domaintypes.State, bool, error)
	ResetState() error
}
