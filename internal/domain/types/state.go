package types

// ErrorText is shown in place of a result when dividing by zero.
const ErrorText = "Error"

// State is the whole of a calculator widget's input state. All four fields
// change together on every event.
type State struct {
	// Display is the text currently shown. Never empty.
	Display string `json:"display"`
	// Operand is the first operand of a pending operation, or "".
	Operand string `json:"operand"`
	// Op is the pending operation, OpNone when nothing is pending.
	Op Operation `json:"op"`
	// AwaitingEntry means the next digit starts a fresh number.
	AwaitingEntry bool `json:"awaiting_entry"`
}

// InitialState returns the state of a freshly opened or cleared calculator.
func InitialState() State {
	return State{Display: "0", AwaitingEntry: true}
}
