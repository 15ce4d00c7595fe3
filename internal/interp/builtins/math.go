package builtins

import (
	"fmt"
	"math"
	"time"

	"github.com/goloxi/loxi/internal/errors"
	"github.com/goloxi/loxi/internal/object"
)

// asInt reports whether obj is a Number with no fractional part, returning
// its integer value.
func asInt(obj object.Object) (int, bool) {
	n, ok := obj.(*object.Number)
	if !ok || n.Value != math.Trunc(n.Value) {
		return 0, false
	}
	return int(n.Value), true
}

func asNumber(obj object.Object) (*object.Number, bool) {
	n, ok := obj.(*object.Number)
	return n, ok
}

func clockFn(_ Context, _ []object.Object) (object.Object, error) {
	return &object.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

func randFn(ctx Context, _ []object.Object) (object.Object, error) {
	return &object.Number{Value: ctx.Rand().Float64()}, nil
}

func randintFn(ctx Context, args []object.Object) (object.Object, error) {
	lo, ok := asInt(args[0])
	if !ok {
		return nil, errors.NewRuntimeError(fmt.Sprintf("randint() expects integer-valued numbers, got %s", args[0].Type()))
	}
	hi, ok := asInt(args[1])
	if !ok {
		return nil, errors.NewRuntimeError(fmt.Sprintf("randint() expects integer-valued numbers, got %s", args[1].Type()))
	}
	if hi < lo {
		return nil, errors.NewRuntimeError(fmt.Sprintf("randint() requires lo <= hi, got randint(%d, %d)", lo, hi))
	}
	n := lo + ctx.Rand().Intn(hi-lo+1)
	return &object.Number{Value: float64(n)}, nil
}

func roundFn(_ Context, args []object.Object) (object.Object, error) {
	x, ok := asNumber(args[0])
	if !ok {
		return nil, errors.NewRuntimeError(fmt.Sprintf("round() expects a number, got %s", args[0].Type()))
	}
	p, ok := asInt(args[1])
	if !ok {
		return nil, errors.NewRuntimeError(fmt.Sprintf("round() expects an integer-valued precision, got %s", args[1].Type()))
	}
	scale := math.Pow(10, float64(p))
	return &object.Number{Value: math.Round(x.Value*scale) / scale}, nil
}
