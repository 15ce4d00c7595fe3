package interp

import (
	"fmt"

	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/object"
)

// execute runs one statement, returning the signal it produced (none for a
// normal fall-through) or the first error encountered.
func (i *Interpreter) execute(stmt ast.Statement) (Signal, error) {
	switch s := stmt.(type) {
	case *ast.Null:
		return none, nil
	case *ast.ExprStmt:
		_, err := i.eval(s.Expr)
		return none, err
	case *ast.VarDecl:
		return i.executeVarDecl(s)
	case *ast.Block:
		return i.executeBlock(s.Stmts)
	case *ast.If:
		return i.executeIf(s)
	case *ast.While:
		return i.executeWhile(s)
	case *ast.Break:
		return Signal{Kind: SignalBreak}, nil
	case *ast.Continue:
		return Signal{Kind: SignalContinue}, nil
	case *ast.Return:
		return i.executeReturn(s)
	case *ast.Function:
		i.env.Declare(s.Name.Lexeme, &UserFunction{decl: s, interp: i})
		return none, nil
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

func (i *Interpreter) executeVarDecl(s *ast.VarDecl) (Signal, error) {
	var val object.Object
	if s.Init != nil {
		v, err := i.eval(s.Init)
		if err != nil {
			return none, err
		}
		val = v
	}
	i.env.Declare(s.Name.Lexeme, val)
	return none, nil
}

// executeBlock pushes a new frame, runs stmts in order, propagates the
// first non-none signal, and pops the frame on every exit path including a
// runtime error.
func (i *Interpreter) executeBlock(stmts []ast.Statement) (Signal, error) {
	i.env.Push()
	defer i.env.Pop()
	return i.executeStatements(stmts)
}

// executeStatements runs stmts in order against the current (already
// pushed) frame, propagating the first non-none signal. Used directly by
// UserFunction.Invoke, which pushes its own call frame before binding
// parameters into it.
func (i *Interpreter) executeStatements(stmts []ast.Statement) (Signal, error) {
	for _, stmt := range stmts {
		sig, err := i.execute(stmt)
		if err != nil {
			return none, err
		}
		if sig.Kind != SignalNone {
			return sig, nil
		}
	}
	return none, nil
}

func (i *Interpreter) executeIf(s *ast.If) (Signal, error) {
	cond, err := i.eval(s.Cond)
	if err != nil {
		return none, err
	}
	if object.Truthy(cond) {
		return i.execute(s.Then)
	}
	if s.ElseBranch != nil {
		return i.execute(s.ElseBranch)
	}
	return none, nil
}

// executeWhile runs a (possibly for-desugared) while loop: Break exits,
// Continue runs Increment (if any, supporting desugared for-loops) before
// re-testing Cond, and Return propagates outward.
func (i *Interpreter) executeWhile(s *ast.While) (Signal, error) {
	for {
		cond, err := i.eval(s.Cond)
		if err != nil {
			return none, err
		}
		if !object.Truthy(cond) {
			return none, nil
		}

		sig, err := i.execute(s.Body)
		if err != nil {
			return none, err
		}
		switch sig.Kind {
		case SignalBreak:
			return none, nil
		case SignalReturn:
			return sig, nil
		}

		if s.Increment != nil {
			if _, err := i.eval(s.Increment); err != nil {
				return none, err
			}
		}
	}
}

func (i *Interpreter) executeReturn(s *ast.Return) (Signal, error) {
	val := object.Object(object.NilValue)
	if s.Value != nil {
		v, err := i.eval(s.Value)
		if err != nil {
			return none, err
		}
		val = v
	}
	return Signal{Kind: SignalReturn, Value: val}, nil
}
