// Package errors formats the interpreter's three diagnostic kinds — scan,
// parse, and runtime errors — into the messages specified for the CLI and
// REPL, grounded on the teacher's source-line-plus-caret diagnostic
// formatter.
package errors

import "github.com/goloxi/loxi/internal/token"

// ScanError is a positioned lexical error.
type ScanError struct {
	Pos     token.Position
	Kind    string // lexer.ErrorKind.String()
	Message string
}

func (e *ScanError) Error() string {
	return e.Pos.String() + ": syntax error: (" + e.Kind + ") " + e.Message
}

// ParseError carries the offending token alongside the message.
type ParseError struct {
	Pos     token.Position
	Lexeme  string
	Message string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": parsing error: " + e.Message + " (on token '" + e.Lexeme + "')"
}

// RuntimeError is any failure raised while evaluating the tree.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Message
}

// NewScanError builds a ScanError from a lexer error kind label.
func NewScanError(pos token.Position, kind, message string) *ScanError {
	return &ScanError{Pos: pos, Kind: kind, Message: message}
}

// NewParseError builds a ParseError for the given offending token.
func NewParseError(pos token.Position, lexeme, message string) *ParseError {
	return &ParseError{Pos: pos, Lexeme: lexeme, Message: message}
}

// NewRuntimeError builds a RuntimeError.
func NewRuntimeError(message string) *RuntimeError {
	return &RuntimeError{Message: message}
}
