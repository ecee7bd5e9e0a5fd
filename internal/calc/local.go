package calc

import (
	"context"

	"calcpad/internal/domain"
	"calcpad/internal/input"
)

// Local runs transitions in process. It is the domain.Calculator used when
// no server is configured, and the one a server uses to answer API calls.
type Local struct{}

// Press applies script to a copy of state and returns the result.
func (Local) Press(ctx context.Context, state domain.State, script string) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}
	evs, err := input.ParseScript(script)
	if err != nil {
		return domain.State{}, err
	}
	if err := ApplyAll(&state, evs...); err != nil {
		return domain.State{}, err
	}
	return state, nil
}

// Evaluate returns Evaluate(a, b, op).
func (Local) Evaluate(ctx context.Context, a, b string, op domain.Operation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Evaluate(a, b, op), nil
}

var _ domain.Calculator = Local{}
