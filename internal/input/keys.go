package input

import (
	"errors"
	"fmt"
	"unicode"

	"calcpad/internal/domain"
)

// ErrUnknownButton is returned by FromButton for a label not on the keypad.
var ErrUnknownButton = errors.New("unknown button")

// FromKey maps a keyboard key name, as reported by a browser keydown event,
// to an event. Digits, "+", "-", "*", "/", "Enter" and "Escape" are mapped;
// every other key, the decimal point included, is ignored.
func FromKey(key string) (domain.Event, bool) {
	switch key {
	case "+":
		return domain.OperationEvent(domain.OpAdd), true
	case "-":
		return domain.OperationEvent(domain.OpSubtract), true
	case "*":
		return domain.OperationEvent(domain.OpMultiply), true
	case "/":
		return domain.OperationEvent(domain.OpDivide), true
	case "Enter":
		return domain.EqualsEvent(), true
	case "Escape":
		return domain.ClearEvent(), true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return domain.DigitEvent(rune(key[0])), true
	}
	return domain.Event{}, false
}

// FromButton maps an on-screen button label to an event.
func FromButton(label string) (domain.Event, error) {
	switch label {
	case "=":
		return domain.EqualsEvent(), nil
	case "C":
		return domain.ClearEvent(), nil
	case "+":
		return domain.OperationEvent(domain.OpAdd), nil
	case "-":
		return domain.OperationEvent(domain.OpSubtract), nil
	case "×":
		return domain.OperationEvent(domain.OpMultiply), nil
	case "÷":
		return domain.OperationEvent(domain.OpDivide), nil
	}
	if len(label) == 1 && (label[0] == '.' || (label[0] >= '0' && label[0] <= '9')) {
		return domain.DigitEvent(rune(label[0])), nil
	}
	return domain.Event{}, fmt.Errorf("%w: %q", ErrUnknownButton, label)
}

// ScriptError reports the first rune of a script that is not a keypad press.
type ScriptError struct {
	Rune   rune
	Offset int // byte offset into the script
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("unexpected %q at offset %d", e.Rune, e.Offset)
}

// ParseScript turns a compact press script such as "12+3.5=" into events.
//
// Each rune is one press: digits and '.', the operators + - * / × ÷, '=' for
// equals and 'C' or 'c' for clear. Whitespace is skipped.
func ParseScript(script string) ([]domain.Event, error) {
	evs := make([]domain.Event, 0, len(script))
	for off, r := range script {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '.' || (r >= '0' && r <= '9'):
			evs = append(evs, domain.DigitEvent(r))
		case r == '=':
			evs = append(evs, domain.EqualsEvent())
		case r == 'C' || r == 'c':
			evs = append(evs, domain.ClearEvent())
		default:
			op, ok := scriptOperators[r]
			if !ok {
				return nil, &ScriptError{Rune: r, Offset: off}
			}
			evs = append(evs, domain.OperationEvent(op))
		}
	}
	return evs, nil
}

var scriptOperators = map[rune]domain.Operation{
	'+': domain.OpAdd,
	'-': domain.OpSubtract,
	'−': domain.OpSubtract,
	'*': domain.OpMultiply,
	'×': domain.OpMultiply,
	'/': domain.OpDivide,
	'÷': domain.OpDivide,
}
