package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"calcpad/internal/domain"
)

const stateFilename = "state.json"

// ErrCorruptState is returned when a stored state cannot be a calculator state.
var ErrCorruptState = errors.New("corrupt calculator state")

// StateFileStore persists one calculator state to disk.
type StateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{dir: dir}
}

// Path returns the file the state is kept in.
func (s *StateFileStore) Path() string { return filepath.Join(s.dir, stateFilename) }

// SaveState writes state to disk.
func (s *StateFileStore) SaveState(state domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate(state); err != nil {
		return err
	}
	return writeJSON(s.Path(), state, 0o600)
}

// LoadState reads the stored state. ok is false when nothing has been saved.
func (s *StateFileStore) LoadState() (domain.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state domain.State
	found, err := readJSON(s.Path(), &state)
	if err != nil {
		return domain.State{}, false, err
	}
	if !found {
		return domain.State{}, false, nil
	}
	if err := validate(state); err != nil {
		return domain.State{}, false, fmt.Errorf("%s: %w", s.Path(), err)
	}
	return state, true, nil
}

// ResetState removes the stored state. Removing a missing state is not an error.
func (s *StateFileStore) ResetState() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func validate(state domain.State) error {
	if state.Display == "" {
		return fmt.Errorf("%w: empty display", ErrCorruptState)
	}
	return nil
}

// Compile-time assertion that StateFileStore implements domain.StateStore.
var _ domain.StateStore = (*StateFileStore)(nil)
