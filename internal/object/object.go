// Package object defines the runtime value taxonomy (Object) evaluated by
// the interpreter.
package object

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Object is a runtime value. Every Lox value implements this interface;
// there is no interface{} escape hatch in the evaluator's value path.
type Object interface {
	// Type returns a short type label, used by the `type` built-in and in
	// runtime error messages.
	Type() string
	// String renders the value the way `print` and string concatenation do.
	String() string
}

// Str is a Lox string value. Values are normalized to Unicode Normalization
// Form C on construction so that two source literals which compose the same
// visible text (e.g. a precomposed "é" vs "e" + combining acute) are
// byte-identical once they reach the runtime, matching the teacher's
// rune-aware string helpers.
type Str struct {
	Value string
}

// NewStr builds a Str, normalizing its contents to NFC.
func NewStr(s string) *Str {
	return &Str{Value: norm.NFC.String(s)}
}

func (s *Str) Type() string   { return "string" }
func (s *Str) String() string { return s.Value }

// Number is a Lox number: a 64-bit float that is integer-valued whenever its
// fractional part is zero.
type Number struct {
	Value float64
}

func (n *Number) Type() string { return "number" }

func (n *Number) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Bool is a Lox boolean.
type Bool struct {
	Value bool
}

func (b *Bool) Type() string { return "bool" }

func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Nil is the sole Lox nil value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the single shared Nil instance; callers never need to
// allocate their own.
var NilValue = Nil{}

// Callable is any value that can be invoked: a built-in, a user-defined
// function, or (were classes implemented) a bound method. It is shared by
// reference so assigning a function to a second name, or capturing it in a
// data structure, preserves identity.
type Callable interface {
	Object
	// Arity is the number of arguments Invoke expects.
	Arity() int
	// Name is the callable's declared name, used in error messages and by
	// the `help` built-in.
	Name() string
	// Doc is a one-line description shown by the `help` built-in.
	Doc() string
	// Invoke runs the callable against already-evaluated argument values.
	// The caller is responsible for the arity check; Invoke assumes
	// len(args) == Arity().
	Invoke(args []Object) (Object, error)
}

// Truthy reports whether obj is truthy: every value is truthy except
// Bool(false) and Nil.
func Truthy(obj Object) bool {
	switch v := obj.(type) {
	case *Bool:
		return v.Value
	case Nil:
		return false
	default:
		return true
	}
}

// Equal implements Lox `==`: structural equality within the same variant,
// false across variants.
func Equal(a, b Object) bool {
	switch av := a.(type) {
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Value == bv.Value
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return a == b
	}
}
