package types

// EventKind selects which handler an Event is delivered to.
type EventKind uint8

const (
	EventDigit EventKind = iota + 1
	EventOperation
	EventEquals
	EventClear
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventOperation:
		return "operation"
	case EventEquals:
		return "equals"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event is one button press or key stroke, already mapped by an adapter.
type Event struct {
	Kind  EventKind
	Digit rune      // EventDigit only: '0'..'9' or '.'
	Op    Operation // EventOperation only
}

// DigitEvent returns an event entering d.
func DigitEvent(d rune) Event { return Event{Kind: EventDigit, Digit: d} }

// OperationEvent returns an event pressing op.
func OperationEvent(op Operation) Event { return Event{Kind: EventOperation, Op: op} }

// EqualsEvent returns an event pressing "=".
func EqualsEvent() Event { return Event{Kind: EventEquals} }

// ClearEvent returns an event pressing "C".
func ClearEvent() Event { return Event{Kind: EventClear} }

// String renders the event as the button a user would press.
func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		return string(e.Digit)
	case EventOperation:
		return e.Op.String()
	case EventEquals:
		return "="
	case EventClear:
		return "C"
	default:
		return "?"
	}
}
