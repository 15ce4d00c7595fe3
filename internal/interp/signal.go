package interp

import "github.com/goloxi/loxi/internal/object"

// SignalKind classifies the non-local effect a statement's execution
// produced, if any.
type SignalKind int

const (
	// SignalNone means the statement fell through normally.
	SignalNone SignalKind = iota
	SignalBreak
	SignalContinue
	SignalReturn
)

// Signal is the result of executing a statement: either SignalNone, or a
// control-flow signal that must propagate up through enclosing blocks,
// loops, and (for Return) the current function call. This is a value
// returned by execution, not mutable ambient state.
type Signal struct {
	Kind  SignalKind
	Value object.Object // only meaningful when Kind == SignalReturn
}

// none is the zero Signal, returned by every statement that doesn't alter
// control flow.
var none = Signal{Kind: SignalNone}
