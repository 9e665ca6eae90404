// File: fault.go
// Title: Lexer and Parser Faults
// Description: Raising and recovering the fatal faults of the toolkit.
//              Faults are coded *error.Error values carried by a panic;
//              Recover turns them back into an error at the single boundary
//              that runs a solver.
// Version: v0.1.1
// Created: 2025-12-09
// Modified: 2025-12-10
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation
// - 2025-12-10 v0.1.1: FailNumberOverflow

package parsetools

import (
	"fmt"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
)

// FailMalformedCharacter raises a MALFORMED_CHARACTER fault for c at pos.
func FailMalformedCharacter(pos Index, c rune) {
	panic(aocerror.Newf("unknown character at %d: %q", pos, c).
		WithCode(aocerror.CodeMalformedCharacter).
		WithOperation("lex").
		WithDetail("position", pos).
		WithDetail("character", string(c)))
}

// FailMalformedWord raises a MALFORMED_CHARACTER fault for a letter run
// that is not part of the grammar's vocabulary.
func FailMalformedWord(pos Index, word string) {
	panic(aocerror.Newf("unknown word at %d: %q", pos, word).
		WithCode(aocerror.CodeMalformedCharacter).
		WithOperation("lex").
		WithDetail("position", pos).
		WithDetail("word", word))
}

// FailNumberOverflow raises a NUMBER_OVERFLOW fault for a digit run
// starting at pos whose value does not fit an int.
func FailNumberOverflow(pos Index, digits string) {
	panic(aocerror.Newf("number at %d out of range: %s", pos, digits).
		WithCode(aocerror.CodeNumberOverflow).
		WithOperation("lex").
		WithDetail("position", pos).
		WithDetail("text", digits))
}

// FailUnexpectedToken raises an UNEXPECTED_TOKEN fault for the token found
// at pos, or EOF when pos is past the end.
func FailUnexpectedToken[K comparable](tokens []Token[K], pos Index, want K) {
	found := describe(tokens, pos)
	panic(aocerror.Newf("expected token %v at %d, found %s", want, pos, found).
		WithCode(aocerror.CodeUnexpectedToken).
		WithOperation("parse").
		WithDetail("position", pos).
		WithDetail("expected", fmt.Sprint(want)).
		WithDetail("found", found))
}

// FailUnexpected raises an UNEXPECTED_TOKEN fault where the grammar expects
// one of several productions, described by expected.
func FailUnexpected[K comparable](tokens []Token[K], pos Index, expected string) {
	found := describe(tokens, pos)
	panic(aocerror.Newf("expected %s at %d, found %s", expected, pos, found).
		WithCode(aocerror.CodeUnexpectedToken).
		WithOperation("parse").
		WithDetail("position", pos).
		WithDetail("expected", expected).
		WithDetail("found", found))
}

// FailArity raises an ARITY_VIOLATION fault for a fixed-size construct
// starting at pos.
func FailArity(pos Index, expected, actual int) {
	panic(aocerror.Newf("expected %d elements at %d, found %d", expected, pos, actual).
		WithCode(aocerror.CodeArityViolation).
		WithOperation("parse").
		WithDetail("position", pos).
		WithDetail("expected", expected).
		WithDetail("actual", actual))
}

// Recover converts a toolkit fault into *errp. It must be deferred directly.
// Panics that do not carry a coded error are re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if fault, ok := r.(*aocerror.Error); ok {
		*errp = fault
		return
	}
	panic(r)
}

// Catch runs fn and returns the fault it raised, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}
