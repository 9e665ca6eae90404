// File: lextools.go
// Title: Character-Level Lexing Helpers
// Description: Helpers for step functions working on rune input: reading
//              digit and letter runs and skipping blanks.
// Version: v0.1.1
// Created: 2025-12-09
// Modified: 2025-12-10
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation
// - 2025-12-10 v0.1.1: ReadNumber faults on digit runs that overflow int

package parsetools

import (
	"slices"
	"strconv"
	"unicode"

	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// ReadSequence collects the run of runes satisfying pred starting at pos and
// maps it with mapFn. An empty run maps an empty slice.
func ReadSequence[T any](input []rune, pos Index, pred func(rune) bool, mapFn func([]rune) T) (Index, T) {
	start := pos
	for !slicex.IsAtEnd(input, pos) && pred(input[pos]) {
		pos = slicex.Advance(pos)
	}
	return pos, mapFn(slices.Clone(input[start:pos]))
}

// ReadNumber reads a run of decimal digits. A run that does not fit an int
// raises NUMBER_OVERFLOW; an empty run reads as 0.
func ReadNumber(input []rune, pos Index) (Index, int) {
	end, digits := ReadSequence(input, pos, IsDigit, func(digits []rune) string {
		return string(digits)
	})
	if digits == "" {
		return end, 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		FailNumberOverflow(pos, digits)
	}
	return end, n
}

// ReadIdentifier reads a run of letters.
func ReadIdentifier(input []rune, pos Index) (Index, string) {
	return ReadSequence(input, pos, unicode.IsLetter, func(letters []rune) string {
		return string(letters)
	})
}

// SkipWhitespace advances past blanks. Only ' ' counts; newlines are
// significant to every grammar and stay in the input.
func SkipWhitespace(input []rune, pos Index) Index {
	for !slicex.IsAtEnd(input, pos) && input[pos] == ' ' {
		pos = slicex.Advance(pos)
	}
	return pos
}

// IsDigit reports whether c is an ASCII decimal digit
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
