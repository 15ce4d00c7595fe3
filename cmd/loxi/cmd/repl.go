package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/goloxi/loxi/internal/interp"
	"github.com/goloxi/loxi/internal/parser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Read one line from stdin, evaluate it as a program, print any output,
and loop. A line with a parse or runtime error prints the diagnostic to
stderr and the loop continues; it never exits the REPL.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL implements both "loxi repl" and the bare "loxi" default. Every
// line shares one Interpreter, so a `let` or `fn` declared on one line is
// visible on the next: the environment stack persists for the life of the
// loop, only ever gaining and losing block/call frames, never being
// recreated.
func runREPL(_ *cobra.Command, _ []string) error {
	return repl(os.Stdin, os.Stdout, os.Stderr)
}

func repl(in io.Reader, stdout, stderr io.Writer) error {
	i := interp.New(stdout, stderr)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		p, scanErr := parser.New(line)
		if scanErr != nil {
			fmt.Fprintln(stderr, scanErr.Error())
			continue
		}

		stmts := p.Parse()
		if errs := p.Errors(); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(stderr, e.Error())
			}
			continue
		}

		if err := i.Run(stmts); err != nil {
			fmt.Fprintln(stderr, err.Error())
		}
	}
}
