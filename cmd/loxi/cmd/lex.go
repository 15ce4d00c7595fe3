package cmd

import (
	"fmt"

	"github.com/goloxi/loxi/internal/lexer"
	"github.com/goloxi/loxi/internal/token"
	"github.com/spf13/cobra"
)

var lexInline string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a loxi file or expression and print the resulting tokens",
	Long: `Tokenize a loxi program and print the token stream, one token per
line. Useful for debugging the scanner.

Examples:
  loxi lex script.lox
  loxi lex -c "let x = 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, _, err := readSource(lexInline, args)
		if err != nil {
			return exitCode(64, err)
		}
		return lexSource(source)
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexInline, "eval", "c", "", "tokenize the given source string instead of reading a file")
}

// lexSource prints the token stream to stdout and returns any scan error
// unreported: the diagnostic belongs on stderr, and main.go's single print
// site is where that happens, so it is not also printed here.
func lexSource(source string) error {
	l := lexer.New(source)
	for {
		tok, scanErr := l.NextToken()
		if scanErr != nil {
			return exitCode(65, scanErr)
		}

		fmt.Println(tok.String())
		if tok.Kind == token.EOF {
			return nil
		}
	}
}
