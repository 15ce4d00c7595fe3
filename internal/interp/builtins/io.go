package builtins

import (
	"fmt"
	"sort"

	"github.com/goloxi/loxi/internal/errors"
	"github.com/goloxi/loxi/internal/object"
)

func printFn(ctx Context, args []object.Object) (object.Object, error) {
	fmt.Fprintln(ctx.Stdout(), args[0].String())
	return object.NilValue, nil
}

func typeFn(ctx Context, args []object.Object) (object.Object, error) {
	fmt.Fprintln(ctx.Stdout(), args[0].Type())
	return object.NilValue, nil
}

func helpFn(ctx Context, args []object.Object) (object.Object, error) {
	if c, ok := args[0].(object.Callable); ok {
		fmt.Fprintf(ctx.Stdout(), "%s: %s\n", c.Name(), c.Doc())
		return object.NilValue, nil
	}
	fmt.Fprintf(ctx.Stdout(), "no help available for %s\n", args[0].Type())
	return object.NilValue, nil
}

func dirFn(ctx Context, _ []object.Object) (object.Object, error) {
	names := ctx.TopFrameNames()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(ctx.Stdout(), name)
	}
	return object.NilValue, nil
}

func exitFn(ctx Context, args []object.Object) (object.Object, error) {
	code, ok := asInt(args[0])
	if !ok {
		return nil, errors.NewRuntimeError(fmt.Sprintf("exit() expects an integer-valued number, got %s", args[0].Type()))
	}
	ctx.Exit(code)
	return object.NilValue, nil
}

func quitFn(ctx Context, _ []object.Object) (object.Object, error) {
	ctx.Exit(0)
	return object.NilValue, nil
}
