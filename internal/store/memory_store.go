package store

import (
	"sync"

	"calcpad/internal/domain"
)

// MemoryStore keeps a calculator state in memory.
type MemoryStore struct {
	mu    sync.Mutex
	state domain.State
	saved bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) SaveState(state domain.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := validate(state); err != nil {
		return err
	}
	m.state, m.saved = state, true
	return nil
}

func (m *MemoryStore) LoadState() (domain.State, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.saved, nil
}

func (m *MemoryStore) ResetState() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state, m.saved = domain.State{}, false
	return nil
}

var _ domain.StateStore = (*MemoryStore)(nil)
