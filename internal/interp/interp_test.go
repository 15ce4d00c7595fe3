package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goloxi/loxi/internal/parser"
)

// run parses and evaluates source against a fresh Interpreter, returning
// everything written to stdout.
func run(t *testing.T, source string) (stdout string, err error) {
	t.Helper()
	p, scanErr := parser.New(source)
	if scanErr != nil {
		t.Fatalf("unexpected scan error: %v", scanErr)
	}
	stmts := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse error(s): %v", errs)
	}

	var out, errOut bytes.Buffer
	i := New(&out, &errOut)
	err = i.Run(stmts)
	return out.String(), err
}

func TestIfElseBranch(t *testing.T) {
	out, err := run(t, `let x = 3; if (x > 9) { print("x > 9!"); } else { print("x <= 9!"); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x <= 9!\n" {
		t.Errorf("stdout = %q, want %q", out, "x <= 9!\n")
	}
}

func TestFibonacciIterative(t *testing.T) {
	out, err := run(t, `let a = 0; let b = 1; for (let i = 0; i < 9; i = i + 1) { let t = b; b = b + a; a = t; } print(a);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "34\n" {
		t.Errorf("stdout = %q, want %q", out, "34\n")
	}
}

func TestFibonacciRecursive(t *testing.T) {
	out, err := run(t, `fn f(n) { if (n == 1) return 0; if (n == 2) return 1; return f(n-1) + f(n-2); } print(f(8));`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "13\n" {
		t.Errorf("stdout = %q, want %q", out, "13\n")
	}
}

func TestForLoopContinueRunsIncrementOnce(t *testing.T) {
	out, err := run(t, `for (let i = 0; i < 20; i = i + 1) { if (i <= 10) continue; print(i); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "11\n12\n13\n14\n15\n16\n17\n18\n19\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestBreakStopsRemainingStatementsInIteration(t *testing.T) {
	out, err := run(t, `for (let i = 0; i < 5; i = i + 1) { if (i == 2) { break; } print(i); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n" {
		t.Errorf("stdout = %q, want %q", out, "0\n1\n")
	}
}

func TestDivisionByNonZeroIsExactlyOne(t *testing.T) {
	out, err := run(t, `let x = 7; print(x / x);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Errorf("stdout = %q, want %q", out, "1\n")
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, err := run(t, `print(1 / 0);`)
	if err == nil {
		t.Fatal("expected a runtime error for division by zero")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("error = %q, want it to mention division by zero", err.Error())
	}
}

func TestUninitializedVariableUseIsARuntimeError(t *testing.T) {
	_, err := run(t, `let x; print(x + 1);`)
	if err == nil {
		t.Fatal("expected a runtime error for using an uninitialized variable")
	}
	if !strings.Contains(err.Error(), "uninitialized") {
		t.Errorf("error = %q, want it to mention the uninitialized variable", err.Error())
	}
}

func TestUndefinedNameIsARuntimeError(t *testing.T) {
	_, err := run(t, `print(doesNotExist);`)
	if err == nil {
		t.Fatal("expected a runtime error for an undefined name")
	}
}

func TestFunctionArityMismatchIsARuntimeError(t *testing.T) {
	_, err := run(t, `fn f(a, b) { return a + b; } print(f(1));`)
	if err == nil {
		t.Fatal("expected a runtime error for an arity mismatch")
	}
}

func TestClosuresSeeCurrentNotSnapshottedBindings(t *testing.T) {
	// Recursion must resolve the function's own name through the live
	// environment stack, not a captured-at-definition snapshot.
	out, err := run(t, `
fn isEven(n) {
  if (n == 0) return true;
  return isOdd(n - 1);
}
fn isOdd(n) {
  if (n == 0) return false;
  return isEven(n - 1);
}
print(isEven(10));
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("stdout = %q, want %q", out, "true\n")
	}
}

func TestBlockScopingShadowsOuterVariable(t *testing.T) {
	out, err := run(t, `let x = 1; { let x = 2; print(x); } print(x);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n1\n" {
		t.Errorf("stdout = %q, want %q", out, "2\n1\n")
	}
}

func TestAndOrCoerceResultToBool(t *testing.T) {
	// Decision recorded in DESIGN.md: and/or coerce their result to Bool
	// rather than returning the truthy/falsy operand verbatim.
	out, err := run(t, `print(1 and 2); print(0 or "x");`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\ntrue\n" {
		t.Errorf("stdout = %q, want %q", out, "true\ntrue\n")
	}
}

func TestStringConcatenationWithNonStringStringifies(t *testing.T) {
	out, err := run(t, `print("n = " + 5);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "n = 5\n" {
		t.Errorf("stdout = %q, want %q", out, "n = 5\n")
	}
}
