// Package cmd is the loxi command-line tree: a cobra root command with
// run/repl/lex/parse/version subcommands, mirroring the teacher's
// cmd/dwscript/cmd package layout.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags; it defaults to a development marker like
// the teacher's own Version var.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "loxi",
	Short: "loxi is a tree-walking interpreter for the Lox-family scripting language",
	Long: `loxi scans, parses, and evaluates programs written in a small
dynamically-typed Lox-family scripting language.

Run a script file, evaluate an inline source string, or start an
interactive REPL.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// A bare "loxi" with no subcommand behaves like "loxi repl".
	RunE: func(c *cobra.Command, args []string) error {
		return runREPL(c, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// Execute runs the command tree. Its error, when non-nil, may be an
// *ExitCodeError carrying the specific status spec.md's CLI contract
// requires (64 usage, 65 scan/parse, 1 runtime); main exits with 64 for
// any other error.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCodeError pairs a wrapped error with the process exit status the CLI
// contract requires for it.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }
func (e *ExitCodeError) Unwrap() error { return e.Err }

func exitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}
