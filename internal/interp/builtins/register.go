package builtins

// Register builds every pre-bound built-in against ctx, keyed by name for
// declaration into the global environment frame.
func Register(ctx Context) map[string]*Builtin {
	list := []*Builtin{
		newBuiltin(ctx, "clock", 0, "clock() -> seconds since the Unix epoch", clockFn),
		newBuiltin(ctx, "print", 1, "print(value) -> writes value and a newline to stdout", printFn),
		newBuiltin(ctx, "type", 1, "type(value) -> writes value's type label to stdout", typeFn),
		newBuiltin(ctx, "help", 1, "help(value) -> writes a callable's name and doc string", helpFn),
		newBuiltin(ctx, "rand", 0, "rand() -> uniform float in [0, 1)", randFn),
		newBuiltin(ctx, "randint", 2, "randint(lo, hi) -> uniform integer in [lo, hi]", randintFn),
		newBuiltin(ctx, "round", 2, "round(x, p) -> x rounded to p decimal places", roundFn),
		newBuiltin(ctx, "dir", 0, "dir() -> writes every name in the current scope", dirFn),
		newBuiltin(ctx, "exit", 1, "exit(code) -> terminates the program with the given status", exitFn),
		newBuiltin(ctx, "quit", 0, "quit() -> terminates the program with status 0", quitFn),
	}
	m := make(map[string]*Builtin, len(list))
	for _, b := range list {
		m[b.name] = b
	}
	return m
}
