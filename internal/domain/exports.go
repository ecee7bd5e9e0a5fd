package domain

import (
	interfaces "calcpad/internal/domain/interfaces"
	types "calcpad/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	State     = types.State
	Operation = types.Operation
	Event     = types.Event
	EventKind = types.EventKind

	PressRequest     = types.PressRequest
	PressResponse    = types.PressResponse
	EvaluateRequest  = types.EvaluateRequest
	EvaluateResponse = types.EvaluateResponse
	ErrorResponse    = types.ErrorResponse
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	StateStore     = interfaces.StateStore
	SessionService = interfaces.SessionService
	Calculator     = interfaces.Calculator
)

const (
	OpNone     = types.OpNone
	OpAdd      = types.OpAdd
	OpSubtract = types.OpSubtract
	OpMultiply = types.OpMultiply
	OpDivide   = types.OpDivide

	EventDigit     = types.EventDigit
	EventOperation = types.EventOperation
	EventEquals    = types.EventEquals
	EventClear     = types.EventClear

	ErrorText = types.ErrorText
)

var (
	ErrUnknownOperation = types.ErrUnknownOperation

	InitialState   = types.InitialState
	ParseOperation = types.ParseOperation
	DigitEvent     = types.DigitEvent
	OperationEvent = types.OperationEvent
	EqualsEvent    = types.EqualsEvent
	ClearEvent     = types.ClearEvent
)
