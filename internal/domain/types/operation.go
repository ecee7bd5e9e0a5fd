package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned when text does not name an arithmetic operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation is the pending binary operator of a calculation.
type Operation uint8

const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the on-screen symbol of the operation. OpNone renders as "".
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// Valid reports whether op is one of the four arithmetic operations.
func (op Operation) Valid() bool { return op >= OpAdd && op <= OpDivide }

// ParseOperation accepts operator symbols ("+", "-", "*", "×", "/", "÷", ...)
// and names ("add", "sub", "multiply", ...). The empty string is OpNone.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OpNone, nil
	case "+", "add", "plus":
		return OpAdd, nil
	case "-", "−", "sub", "subtract", "minus":
		return OpSubtract, nil
	case "*", "×", "x", "mul", "multiply", "times":
		return OpMultiply, nil
	case "/", "÷", "div", "divide":
		return OpDivide, nil
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// MarshalJSON encodes the operation as its symbol.
func (op Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(op.String())
}

// UnmarshalJSON decodes any form accepted by ParseOperation.
func (op *Operation) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseOperation(s)
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
