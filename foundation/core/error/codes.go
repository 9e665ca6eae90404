// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the puzzle solvers. Codes
//              classify lexing, parsing and arity faults as well as the
//              surrounding input, registry and configuration failures.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-12-09 v0.2.0: Replaced platform codes with lexer/parser fault codes
// - 2025-12-10 v0.2.1: NUMBER_OVERFLOW for digit runs that do not fit an int

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Lexing and parsing faults
	CodeMalformedCharacter Code = "MALFORMED_CHARACTER"
	CodeNumberOverflow     Code = "NUMBER_OVERFLOW"
	CodeUnexpectedToken    Code = "UNEXPECTED_TOKEN"
	CodeArityViolation     Code = "ARITY_VIOLATION"

	// Input and registry
	CodeInputNotFound Code = "INPUT_NOT_FOUND"
	CodeUnknownPuzzle Code = "UNKNOWN_PUZZLE"

	// Configuration
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedCharacter, CodeNumberOverflow:
		return "lexer"
	case CodeUnexpectedToken, CodeArityViolation:
		return "parser"
	case CodeInputNotFound, CodeUnknownPuzzle:
		return "input"
	case CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsFault reports whether the code marks an unrecoverable lex or parse fault
func (c Code) IsFault() bool {
	switch c {
	case CodeMalformedCharacter, CodeNumberOverflow, CodeUnexpectedToken, CodeArityViolation:
		return true
	default:
		return false
	}
}
