// File: lexer.go
// Title: Trebuchet Calibration Lexer
// Description: Emits one token per input position: a Digit where a digit
//              (or, with spelled words, a digit name) starts, Newline at
//              line ends and Skip elsewhere. Every step advances by exactly
//              one so overlapping names such as "eightwo" yield both digits.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day01

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the calibration grammar
type Kind int

const (
	Skip Kind = iota
	Digit
	Newline
)

func (k Kind) String() string {
	switch k {
	case Digit:
		return "Digit"
	case Newline:
		return "Newline"
	default:
		return "Skip"
	}
}

// IsNumeric reports whether tokens of kind k carry a value in Number
func (k Kind) IsNumeric() bool {
	return k == Digit
}

// Token is a calibration token; Digit tokens carry their value in Number
type Token = parsetools.Token[Kind]

var digitNames = [][]rune{
	[]rune("one"), []rune("two"), []rune("three"),
	[]rune("four"), []rune("five"), []rune("six"),
	[]rune("seven"), []rune("eight"), []rune("nine"),
}

// Lex tokenizes input. With spelled set, digit names count as digits.
// Skip tokens are dropped from the result.
func Lex(input []rune, spelled bool) []Token {
	tokens := parsetools.Transform(input, func(in []rune, pos parsetools.Index) (parsetools.Index, Token) {
		next := slicex.Advance(pos)
		c := in[pos]

		switch {
		case c == '\n':
			return next, Token{Kind: Newline, Pos: pos}
		case parsetools.IsDigit(c):
			return next, Token{Kind: Digit, Number: int(c - '0'), Pos: pos}
		case spelled:
			if value, ok := digitNameAt(in, pos); ok {
				return next, Token{Kind: Digit, Number: value, Pos: pos}
			}
		}
		return next, Token{Kind: Skip, Pos: pos}
	})

	return parsetools.Without(tokens, Skip)
}

// digitNameAt reports the value of the digit name starting at pos
func digitNameAt(input []rune, pos parsetools.Index) (int, bool) {
	for i, name := range digitNames {
		end := pos + len(name)
		if end <= len(input) && slicex.Equal(input[pos:end], name) {
			return i + 1, true
		}
	}
	return 0, false
}
