// Package calc is the calculator's state machine.
//
// The machine owns no state. Each handler takes a *domain.State and updates
// its four fields together:
//
//   - EnterDigit      type a digit or decimal point
//   - PressOperation  choose +, -, × or ÷ (evaluating a chained operation)
//   - PressEquals     evaluate the pending operation
//   - Clear           return to the initial state
//
// Operations apply left to right with no precedence: 5 + 3 + 2 = is (5+3)+2.
// The display is always text. Results are formatted by FormatNumber, and
// dividing by zero shows "Error", which later evaluates as NaN.
package calc
