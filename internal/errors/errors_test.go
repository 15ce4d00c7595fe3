package errors

import (
	"strings"
	"testing"

	"github.com/goloxi/loxi/internal/token"
)

func TestScanErrorFormat(t *testing.T) {
	e := NewScanError(token.Position{Line: 1, Column: 14}, "unterminated string", "unterminated string")
	if got := e.Error(); !strings.Contains(got, "unterminated string") {
		t.Errorf("Error() = %q, want it to mention 'unterminated string'", got)
	}
	if !strings.HasPrefix(e.Error(), "1:14:") {
		t.Errorf("Error() = %q, want it to start with the position", e.Error())
	}
}

func TestParseErrorFormat(t *testing.T) {
	e := NewParseError(token.Position{Line: 2, Column: 3}, "=", "invalid assignment target")
	got := e.Error()
	if !strings.Contains(got, "invalid assignment target") {
		t.Errorf("Error() = %q", got)
	}
	if !strings.Contains(got, "'='") {
		t.Errorf("Error() = %q, want it to quote the offending lexeme", got)
	}
}

func TestRuntimeErrorFormatHasNoPosition(t *testing.T) {
	e := NewRuntimeError("division by zero")
	if got := e.Error(); got != "runtime error: division by zero" {
		t.Errorf("Error() = %q, want %q", got, "runtime error: division by zero")
	}
}
