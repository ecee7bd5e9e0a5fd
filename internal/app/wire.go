package app

import (
	"log/slog"
	"net/http"
	"os"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
	"calcpad/internal/remote"
	sessionsvc "calcpad/internal/services/session"
	"calcpad/internal/store"
)

// Wire bundles the store, services and clients for the CLI.
type Wire struct {
	Store      domain.StateStore
	Sessions   domain.SessionService
	Calculator domain.Calculator
	Logger     *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var stateStore domain.StateStore = store.NewStateFileStore(cfg.Home)
	if cfg.Ephemeral {
		stateStore = store.NewMemoryStore()
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	// Presses run locally unless a server is configured.
	var calculator domain.Calculator = calc.Local{}
	if cfg.ServerURL != "" {
		calculator = remote.NewHTTP(cfg.ServerURL, httpClient)
	}

	return &Wire{
		Store:      stateStore,
		Sessions:   sessionsvc.New(stateStore, logger),
		Calculator: calculator,
		Logger:     logger,
	}, nil
}
