// Package builtins implements the fixed set of pre-bound callables that
// populate the global environment frame: clock, print, type, help, rand,
// randint, round, dir, exit, and quit.
//
// Functions here take a Context rather than a concrete interpreter type, the
// same split the teacher uses to let built-ins be implemented once and
// shared across evaluator variants without an import cycle back to the
// package that owns the environment.
package builtins

import (
	"io"
	"math/rand"
)

// Context is the minimal surface a built-in needs from its host
// interpreter: where to write output, the names declared in the innermost
// scope, a source of randomness, and a way to end the program.
type Context interface {
	Stdout() io.Writer
	TopFrameNames() []string
	Rand() *rand.Rand
	Exit(code int)
}
