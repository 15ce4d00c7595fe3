package builtins

import "github.com/goloxi/loxi/internal/object"

// Func is the signature every built-in implementation follows.
type Func func(ctx Context, args []object.Object) (object.Object, error)

// Builtin wraps a Func as an object.Callable. It is the only Callable
// variant that does not carry an AST body: invoking it runs Go code
// directly against already-evaluated argument values.
type Builtin struct {
	name  string
	arity int
	doc   string
	fn    Func
	ctx   Context
}

func newBuiltin(ctx Context, name string, arity int, doc string, fn Func) *Builtin {
	return &Builtin{name: name, arity: arity, doc: doc, fn: fn, ctx: ctx}
}

func (b *Builtin) Type() string   { return "builtin" }
func (b *Builtin) String() string { return "<built-in fn " + b.name + ">" }
func (b *Builtin) Arity() int     { return b.arity }
func (b *Builtin) Name() string   { return b.name }
func (b *Builtin) Doc() string    { return b.doc }

// Invoke runs the built-in. The evaluator has already checked len(args) ==
// Arity() before calling this.
func (b *Builtin) Invoke(args []object.Object) (object.Object, error) {
	return b.fn(b.ctx, args)
}
