// Package domain defines the calculator state, operations and events shared
// by the state machine and every adapter, plus the store and service
// contracts. It holds plain types and interfaces only; the transitions live
// in package calc.
package domain
