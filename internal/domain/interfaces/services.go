package interfaces

import (
	"context"

	domaintypes "calcpad/internal/domain/types"
)

// SessionService applies events to a stored calculator state.
type SessionService interface {
	Press(ctx context.Context, events ...domaintypes.Event) (domaintypes.State, error)
	Current(ctx context.Context) (domaintypes.State, error)
	Clear(ctx context.Context) (domaintypes.State, error)
}

// Calculator runs transitions on behalf of a caller that owns the state.
// Implementations may be local or talk to a calcpad server.
type Calculator interface {
	Press(
		ctx context.Context,
		state domaintypes.State,
		script string,
	) (domaintypes.State, error)
	Evaluate(
		ctx context.Context,
		a, b string,
		op domaintypes.Operation,
	) (string, error)
}
