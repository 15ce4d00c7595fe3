package cmd

import (
	"fmt"
	"strings"

	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/parser"
	"github.com/spf13/cobra"
)

var parseInline string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse loxi source code and dump the resulting syntax tree",
	Long: `Parse a loxi program and print its statement tree, one indented
line per node. Useful for debugging the parser.

Examples:
  loxi parse script.lox
  loxi parse -c "if (x < 1) { print(x); }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, _, err := readSource(parseInline, args)
		if err != nil {
			return exitCode(64, err)
		}
		return parseSource(source)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseInline, "eval", "c", "", "parse the given source string instead of reading a file")
}

// parseSource prints the parsed statement tree to stdout and returns any
// scan/parse error unreported: the diagnostic belongs on stderr, and
// main.go's single print site is where that happens, so it is not also
// printed here.
func parseSource(source string) error {
	p, scanErr := parser.New(source)
	if scanErr != nil {
		return exitCode(65, scanErr)
	}

	stmts := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return exitCode(65, parseErrorList(errs))
	}

	for _, stmt := range stmts {
		dumpNode(stmt, 0)
	}
	return nil
}

func dumpNode(node ast.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", prefix, len(n.Stmts))
		for _, s := range n.Stmts {
			dumpNode(s, indent+1)
		}
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt\n", prefix)
		dumpNode(n.Expr, indent+1)
	case *ast.VarDecl:
		fmt.Printf("%sVarDecl %s\n", prefix, n.Name.Lexeme)
		if n.Init != nil {
			dumpNode(n.Init, indent+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", prefix)
		dumpNode(n.Cond, indent+1)
		dumpNode(n.Then, indent+1)
		if n.ElseBranch != nil {
			dumpNode(n.ElseBranch, indent+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", prefix)
		dumpNode(n.Cond, indent+1)
		dumpNode(n.Body, indent+1)
		if n.Increment != nil {
			fmt.Printf("%s  Increment:\n", prefix)
			dumpNode(n.Increment, indent+2)
		}
	case *ast.Break:
		fmt.Printf("%sBreak\n", prefix)
	case *ast.Continue:
		fmt.Printf("%sContinue\n", prefix)
	case *ast.Return:
		fmt.Printf("%sReturn\n", prefix)
		if n.Value != nil {
			dumpNode(n.Value, indent+1)
		}
	case *ast.Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		fmt.Printf("%sFunction %s(%s)\n", prefix, n.Name.Lexeme, strings.Join(params, ", "))
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.Null:
		fmt.Printf("%sNull\n", prefix)
	case *ast.Literal:
		fmt.Printf("%sLiteral: %#v\n", prefix, n.Value)
	case *ast.Unary:
		fmt.Printf("%sUnary (%s)\n", prefix, n.Operator.Lexeme)
		dumpNode(n.Right, indent+1)
	case *ast.Binary:
		fmt.Printf("%sBinary (%s)\n", prefix, n.Operator.Lexeme)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Logical:
		fmt.Printf("%sLogical (%s)\n", prefix, n.Operator.Lexeme)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Grouping:
		fmt.Printf("%sGrouping\n", prefix)
		dumpNode(n.Inner, indent+1)
	case *ast.Variable:
		fmt.Printf("%sVariable: %s\n", prefix, n.Name.Lexeme)
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", prefix, n.Name.Lexeme)
		dumpNode(n.Value, indent+1)
	case *ast.Call:
		fmt.Printf("%sCall (%d args)\n", prefix, len(n.Args))
		dumpNode(n.Callee, indent+1)
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	default:
		fmt.Printf("%s%T\n", prefix, node)
	}
}
