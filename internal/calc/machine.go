package calc

import (
	"errors"
	"fmt"

	"calcpad/internal/domain"
)

var (
	// ErrInvalidDigit is returned for digit input other than '0'..'9' and '.'.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidOperation is returned when pressing OpNone or an unknown operation.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnknownEvent is returned by Apply for an event with no handler.
	ErrUnknownEvent = errors.New("unknown event")
)

// EnterDigit types d into the display. A display of "0", or one waiting for
// a new entry, is replaced; otherwise d is appended. A second decimal point
// is appended like any other digit.
func EnterDigit(s *domain.State, d rune) error {
	if !isDigit(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}
	if s.Display == "0" || s.AwaitingEntry {
		s.Display = string(d)
		s.AwaitingEntry = false
		return nil
	}
	s.Display += string(d)
	return nil
}

// PressOperation selects op as the pending operation.
//
// If an operation is already pending and a second operand has been typed,
// the pending operation is evaluated first and its result becomes both the
// display and the new first operand. Otherwise the display becomes the first
// operand, so pressing operators back to back only swaps the operator.
func PressOperation(s *domain.State, op domain.Operation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOperation, op)
	}
	if s.Op != domain.OpNone && !s.AwaitingEntry {
		result := Evaluate(s.Operand, s.Display, s.Op)
		s.Display = result
		s.Operand = result
	} else {
		s.Operand = s.Display
	}
	s.Op = op
	s.AwaitingEntry = true
	return nil
}

// PressEquals evaluates the pending operation against the display. It does
// nothing when no operation is pending or no second operand has been typed.
func PressEquals(s *domain.State) {
	if s.Op == domain.OpNone || s.AwaitingEntry {
		return
	}
	s.Display = Evaluate(s.Operand, s.Display, s.Op)
	s.Operand = ""
	s.Op = domain.OpNone
	s.AwaitingEntry = true
}

// Clear resets s to the initial state.
func Clear(s *domain.State) {
	*s = domain.InitialState()
}

// Apply delivers ev to the matching handler.
func Apply(s *domain.State, ev domain.Event) error {
	switch ev.Kind {
	case domain.EventDigit:
		return EnterDigit(s, ev.Digit)
	case domain.EventOperation:
		return PressOperation(s, ev.Op)
	case domain.EventEquals:
		PressEquals(s)
		return nil
	case domain.EventClear:
		Clear(s)
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownEvent, ev.Kind)
	}
}

// ApplyAll applies evs in order and stops at the first error. Events applied
// before the failing one keep their effect.
func ApplyAll(s *domain.State, evs ...domain.Event) error {
	for i, ev := range evs {
		if err := Apply(s, ev); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev, err)
		}
	}
	return nil
}

func isDigit(d rune) bool { return d == '.' || (d >= '0' && d <= '9') }
