package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSourceInlineTakesPrecedence(t *testing.T) {
	source, name, err := readSource("print(1);", []string{"ignored.lox"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != "print(1);" {
		t.Errorf("source = %q", source)
	}
	if name != "<source>" {
		t.Errorf("name = %q, want %q", name, "<source>")
	}
}

func TestReadSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.lox")
	if err := os.WriteFile(path, []byte("print(1);"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	source, name, err := readSource("", []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != "print(1);" {
		t.Errorf("source = %q", source)
	}
	if name != path {
		t.Errorf("name = %q, want %q", name, path)
	}
}

func TestReadSourceRequiresFileOrInline(t *testing.T) {
	if _, _, err := readSource("", nil); err == nil {
		t.Fatal("expected an error when neither a file nor -c is given")
	}
}

func TestRunProgramReturnsExitCode65OnParseError(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runProgram("let ;", &out, &errOut)
	ec, ok := err.(*ExitCodeError)
	if !ok {
		t.Fatalf("got %T, want *ExitCodeError", err)
	}
	if ec.Code != 65 {
		t.Errorf("Code = %d, want 65", ec.Code)
	}
}

func TestRunProgramReturnsExitCode65OnScanError(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runProgram(`let name = "unterminated;`, &out, &errOut)
	ec, ok := err.(*ExitCodeError)
	if !ok {
		t.Fatalf("got %T, want *ExitCodeError", err)
	}
	if ec.Code != 65 {
		t.Errorf("Code = %d, want 65", ec.Code)
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want runProgram to leave printing to its single caller", errOut.String())
	}
	if !strings.Contains(ec.Error(), "unterminated string") {
		t.Errorf("error = %q, want it to mention 'unterminated string'", ec.Error())
	}
}

func TestRunProgramReportsEveryParseErrorWithoutASummaryLine(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runProgram("let = 1; let y = 2;", &out, &errOut)
	ec, ok := err.(*ExitCodeError)
	if !ok {
		t.Fatalf("got %T, want *ExitCodeError", err)
	}
	if strings.Contains(ec.Error(), "error(s)") {
		t.Errorf("error = %q, want no synthesized summary line", ec.Error())
	}
	if !strings.Contains(ec.Error(), "parsing error:") {
		t.Errorf("error = %q, want it to contain a spec-shaped parse diagnostic", ec.Error())
	}
}

func TestRunProgramReturnsExitCode1OnRuntimeError(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runProgram("print(1 / 0);", &out, &errOut)
	ec, ok := err.(*ExitCodeError)
	if !ok {
		t.Fatalf("got %T, want *ExitCodeError", err)
	}
	if ec.Code != 1 {
		t.Errorf("Code = %d, want 1", ec.Code)
	}
}

func TestRunProgramSucceeds(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := runProgram(`print("ok");`, &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "ok\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "ok\n")
	}
}
