package interp

import (
	"fmt"

	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/errors"
	"github.com/goloxi/loxi/internal/object"
)

// eval evaluates expr against the interpreter's current environment.
func (i *Interpreter) eval(expr ast.Expression) (object.Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil
	case *ast.Grouping:
		return i.eval(e.Inner)
	case *ast.Variable:
		return i.evalVariable(e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Call:
		return i.evalCall(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(e *ast.Literal) object.Object {
	switch v := e.Value.(type) {
	case nil:
		return object.NilValue
	case bool:
		return &object.Bool{Value: v}
	case float64:
		return &object.Number{Value: v}
	case string:
		return object.NewStr(v)
	default:
		panic(fmt.Sprintf("interp: literal with unexpected Go type %T", e.Value))
	}
}

func (i *Interpreter) evalVariable(e *ast.Variable) (object.Object, error) {
	name := e.Name.Lexeme
	value, initialized, found := i.env.Resolve(name)
	if !found {
		return nil, errors.NewRuntimeError("name not defined: " + name)
	}
	if !initialized {
		return nil, errors.NewRuntimeError("variable used uninitialized: " + name)
	}
	return value, nil
}

func (i *Interpreter) evalAssign(e *ast.Assign) (object.Object, error) {
	value, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if !i.env.Assign(e.Name.Lexeme, value) {
		return nil, errors.NewRuntimeError("name not defined: " + e.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) evalUnary(e *ast.Unary) (object.Object, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Lexeme {
	case "!":
		return &object.Bool{Value: !object.Truthy(right)}, nil
	case "-":
		n, ok := right.(*object.Number)
		if !ok {
			return nil, errors.NewRuntimeError("unary '-' requires a number, got " + right.Type())
		}
		return &object.Number{Value: -n.Value}, nil
	default:
		panic("interp: unknown unary operator " + e.Operator.Lexeme)
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (object.Object, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	truthy := object.Truthy(left)
	switch e.Operator.Lexeme {
	case "or":
		if truthy {
			return &object.Bool{Value: true}, nil
		}
	case "and":
		if !truthy {
			return &object.Bool{Value: false}, nil
		}
	default:
		panic("interp: unknown logical operator " + e.Operator.Lexeme)
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	return &object.Bool{Value: object.Truthy(right)}, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (object.Object, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, errors.NewRuntimeError("attempted to call a non-callable value of type " + callee.Type())
	}

	args := make([]object.Object, len(e.Args))
	for idx, argExpr := range e.Args {
		v, err := i.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	if len(args) != callable.Arity() {
		return nil, errors.NewRuntimeError(fmt.Sprintf(
			"%s expects %d argument(s), got %d", callable.Name(), callable.Arity(), len(args)))
	}
	return callable.Invoke(args)
}
