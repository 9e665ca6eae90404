// File: transform.go
// Title: Lexer Driver
// Description: Generic repeated-application loop that turns an input
//              sequence into an output sequence by calling a step function
//              until the input is exhausted.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package parsetools

import (
	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Index is a zero-based position into an input or token sequence
type Index = int

// StepFunc consumes at least one element of input starting at pos and
// returns the position after the consumed elements together with the value
// produced for them.
type StepFunc[T, U any] func(input []T, pos Index) (Index, U)

// Transform applies step from position 0 until the input is exhausted and
// returns the produced values in invocation order. An empty input yields an
// empty result without calling step.
//
// A step that fails to advance is a programming error and is reported as an
// internal fault instead of looping forever.
func Transform[T, U any](input []T, step StepFunc[T, U]) []U {
	var out []U

	pos := 0
	for !slicex.IsAtEnd(input, pos) {
		next, value := step(input, pos)
		if next <= pos {
			panic(aocerror.Newf("step function did not advance past position %d", pos).
				WithCode(aocerror.CodeInternal).
				WithOperation("parsetools.Transform").
				WithDetail("position", pos))
		}
		out = append(out, value)
		pos = next
	}

	return out
}
