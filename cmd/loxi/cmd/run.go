package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var runInline string

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run a loxi source file or inline source string",
	Long: `Read a whole file (or the -c source string) and evaluate it as one
program.

Examples:
  loxi run script.lox
  loxi run -c "print(1 + 2);"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, _, err := readSource(runInline, args)
		if err != nil {
			return exitCode(64, err)
		}
		return runProgram(source, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runInline, "eval", "c", "", "evaluate the given source string instead of reading a file")
}
