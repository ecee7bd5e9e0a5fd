package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
)

// Service applies calculator events to the state held in a store.
//
// Calls are serialised, so events from concurrent callers are applied one
// batch at a time in the order the calls acquire the service. A failing
// batch is not persisted.
type Service struct {
	mu     sync.Mutex
	store  domain.StateStore
	logger *slog.Logger
}

// New constructs a Service over store. A nil logger discards logs.
func New(store domain.StateStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Press applies events in order to the stored state and persists the result.
func (s *Service) Press(ctx context.Context, events ...domain.Event) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}
	state, err := s.load()
	if err != nil {
		return domain.State{}, err
	}
	for _, ev := range events {
		if err := calc.Apply(&state, ev); err != nil {
			return domain.State{}, fmt.Errorf("press %s: %w", ev, err)
		}
		s.logger.Debug("event applied",
			"event", ev.String(),
			"display", state.Display,
			"operand", state.Operand,
			"op", state.Op.String(),
			"awaiting_entry", state.AwaitingEntry,
		)
	}
	if err := s.store.SaveState(state); err != nil {
		return domain.State{}, fmt.Errorf("saving state: %w", err)
	}
	return state, nil
}

// Current returns the stored state, or the initial state if none is stored.
func (s *Service) Current(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}
	return s.load()
}

// Clear resets the stored state. It does not read the old state, so it also
// recovers from a corrupt store.
func (s *Service) Clear(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}
	if err := s.store.ResetState(); err != nil {
		return domain.State{}, fmt.Errorf("resetting state: %w", err)
	}
	s.logger.Debug("state cleared")
	return domain.InitialState(), nil
}

func (s *Service) load() (domain.State, error) {
	state, ok, err := s.store.LoadState()
	if err != nil {
		return domain.State{}, fmt.Errorf("loading state: %w", err)
	}
	if !ok {
		return domain.InitialState(), nil
	}
	return state, nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
