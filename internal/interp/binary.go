package interp

import (
	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/errors"
	"github.com/goloxi/loxi/internal/object"
)

func (i *Interpreter) evalBinary(e *ast.Binary) (object.Object, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Lexeme {
	case "==":
		return &object.Bool{Value: object.Equal(left, right)}, nil
	case "!=":
		return &object.Bool{Value: !object.Equal(left, right)}, nil
	case "+":
		return evalAdd(left, right)
	case "-":
		return evalArith(left, right, "-")
	case "*":
		return evalArith(left, right, "*")
	case "/":
		return evalDivide(left, right)
	case "<", "<=", ">", ">=":
		return evalCompare(left, right, e.Operator.Lexeme)
	default:
		panic("interp: unknown binary operator " + e.Operator.Lexeme)
	}
}

// evalAdd implements `+`: Number+Number addition, Str+Str concatenation, or
// Str with any non-Nil value stringified and concatenated.
func evalAdd(left, right object.Object) (object.Object, error) {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok := right.(*object.Number); ok {
			return &object.Number{Value: ln.Value + rn.Value}, nil
		}
	}
	if ls, ok := left.(*object.Str); ok {
		if rs, ok := right.(*object.Str); ok {
			return object.NewStr(ls.Value + rs.Value), nil
		}
		if _, isNil := right.(object.Nil); !isNil {
			return object.NewStr(ls.Value + right.String()), nil
		}
	}
	if rs, ok := right.(*object.Str); ok {
		if _, isNil := left.(object.Nil); !isNil {
			return object.NewStr(left.String() + rs.Value), nil
		}
	}
	return nil, errors.NewRuntimeError("'+' is not defined for " + left.Type() + " and " + right.Type())
}

func evalArith(left, right object.Object, op string) (object.Object, error) {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, errors.NewRuntimeError("'" + op + "' requires two numbers, got " + left.Type() + " and " + right.Type())
	}
	switch op {
	case "-":
		return &object.Number{Value: ln.Value - rn.Value}, nil
	case "*":
		return &object.Number{Value: ln.Value * rn.Value}, nil
	default:
		panic("interp: unknown arithmetic operator " + op)
	}
}

func evalDivide(left, right object.Object) (object.Object, error) {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, errors.NewRuntimeError("'/' requires two numbers, got " + left.Type() + " and " + right.Type())
	}
	if rn.Value == 0 {
		return nil, errors.NewRuntimeError("division by zero")
	}
	return &object.Number{Value: ln.Value / rn.Value}, nil
}

// evalCompare implements the ordered comparisons, defined on Number×Number
// and Str×Str only, lexicographic on strings.
func evalCompare(left, right object.Object, op string) (object.Object, error) {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok := right.(*object.Number); ok {
			return &object.Bool{Value: compareNumbers(ln.Value, rn.Value, op)}, nil
		}
	}
	if ls, ok := left.(*object.Str); ok {
		if rs, ok := right.(*object.Str); ok {
			return &object.Bool{Value: compareStrings(ls.Value, rs.Value, op)}, nil
		}
	}
	return nil, errors.NewRuntimeError("'" + op + "' requires two numbers or two strings, got " + left.Type() + " and " + right.Type())
}

func compareNumbers(l, r float64, op string) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	default:
		panic("interp: unknown comparison operator " + op)
	}
}

func compareStrings(l, r string, op string) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	default:
		panic("interp: unknown comparison operator " + op)
	}
}
