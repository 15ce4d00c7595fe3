package interp

import (
	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/object"
)

// UserFunction is a callable backed by a `fn` declaration. It is shared by
// reference: assigning it to a second name or passing it as an argument
// preserves identity, matching every other Callable variant.
//
// Recursion works because the function's own name is declared in the
// enclosing frame before the body ever runs, so a call to itself inside the
// body resolves through the same environment stack as any other name.
// Closures are lexical-visibility-only: UserFunction does not capture a
// snapshot of the defining environment, only a reference to the shared
// Interpreter whose environment stack is whatever is live at call time.
type UserFunction struct {
	decl   *ast.Function
	interp *Interpreter
}

func (f *UserFunction) Type() string   { return "function" }
func (f *UserFunction) String() string { return "<fn " + f.decl.Name.Lexeme + ">" }
func (f *UserFunction) Arity() int     { return len(f.decl.Params) }
func (f *UserFunction) Name() string   { return f.decl.Name.Lexeme }
func (f *UserFunction) Doc() string    { return "user-defined function " + f.decl.Name.Lexeme }

// Invoke implements the function call semantics of spec §4.3: push a fresh
// frame, bind parameters by position, run the body, and pop the frame on
// every exit path. A Return signal supplies the result; falling off the end
// of the body yields Nil.
func (f *UserFunction) Invoke(args []object.Object) (object.Object, error) {
	f.interp.env.Push()
	defer f.interp.env.Pop()

	for idx, param := range f.decl.Params {
		f.interp.env.Declare(param.Lexeme, args[idx])
	}

	sig, err := f.interp.executeStatements(f.decl.Body)
	if err != nil {
		return nil, err
	}
	if sig.Kind == SignalReturn {
		return sig.Value, nil
	}
	return object.NilValue, nil
}
