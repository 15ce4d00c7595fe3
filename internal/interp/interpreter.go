// Package interp is the tree-walking evaluator: an environment stack, a
// control-flow Signal sum type, and the statement/expression visitors that
// walk the tree produced by internal/parser.
package interp

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/interp/builtins"
	"github.com/goloxi/loxi/internal/object"
)

// Interpreter holds the one piece of mutable state a running program has:
// its environment stack. stdout/stderr are where `print` and friends write;
// rng backs `rand`/`randint`; exit is how `exit`/`quit` end the process,
// overridable so tests can observe a requested exit code instead of really
// terminating.
type Interpreter struct {
	env    *Environment
	stdout io.Writer
	stderr io.Writer
	rng    *rand.Rand
	exit   func(code int)
}

// New builds an Interpreter with a global frame pre-populated with every
// built-in from spec §4.5.
func New(stdout, stderr io.Writer) *Interpreter {
	i := &Interpreter{
		env:    NewEnvironment(),
		stdout: stdout,
		stderr: stderr,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		exit:   os.Exit,
	}
	for name, b := range builtins.Register(i) {
		i.env.Declare(name, b)
	}
	return i
}

// Stdout, TopFrameNames, Rand, and Exit implement builtins.Context.
func (i *Interpreter) Stdout() io.Writer       { return i.stdout }
func (i *Interpreter) TopFrameNames() []string { return i.env.TopFrameNames() }
func (i *Interpreter) Rand() *rand.Rand        { return i.rng }
func (i *Interpreter) Exit(code int)           { i.exit(code) }

// SetExitFunc overrides how exit/quit end the process; tests use this to
// observe a requested status instead of terminating the test binary.
func (i *Interpreter) SetExitFunc(f func(int)) { i.exit = f }

// Stderr returns the stderr writer the Interpreter was built with.
func (i *Interpreter) Stderr() io.Writer { return i.stderr }

// Run executes a parsed program's top-level statements in order.
// Break/Continue/Return cannot legally escape to this level (the parser
// rejects them outside a loop/function), so any signal here would indicate
// an interpreter bug, not malformed user input.
func (i *Interpreter) Run(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if _, err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

var _ object.Callable = (*UserFunction)(nil)
