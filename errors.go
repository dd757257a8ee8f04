package qasmparser

import (
	"errors"
	"fmt"
)

// Sentinel errors raised during the translation pass. Callers match them
// with errors.Is.
var (
	// ErrUnsupportedGate reports a gate name outside the supported table,
	// or a listed gate applied with the wrong number of operands or
	// parameters.
	ErrUnsupportedGate = errors.New("unsupported gate")

	// ErrReference reports a qubit operand that names an undeclared
	// register, indexes a non-array, or is out of range.
	ErrReference = errors.New("invalid qubit reference")

	// ErrRedeclaration reports a register or constant name declared twice.
	ErrRedeclaration = errors.New("redeclaration")
)

// SyntaxError is a lexical or syntactic error reported by the OpenQASM
// parser, surfaced unchanged.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
