// File: lexer.go
// Title: Gear Ratios Lexer
// Description: Tokenizes the engine schematic: digit runs become Number
//              tokens, '.' Dot, line ends Newline and every other visible
//              character a Symbol.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day03

import (
	"unicode"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the schematic grammar
type Kind int

const (
	Dot Kind = iota
	Number
	Symbol
	Newline
)

func (k Kind) String() string {
	switch k {
	case Dot:
		return "Dot"
	case Number:
		return "Number"
	case Symbol:
		return "Symbol"
	case Newline:
		return "Newline"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether tokens of kind k carry a value in Number
func (k Kind) IsNumeric() bool {
	return k == Number
}

// Token is a schematic token. Number tokens carry the value and the digits
// in Text; Symbol tokens carry the character in Text.
type Token = parsetools.Token[Kind]

// Lex tokenizes a schematic
func Lex(input []rune) []Token {
	return parsetools.Transform(input, func(in []rune, pos parsetools.Index) (parsetools.Index, Token) {
		c := in[pos]
		switch {
		case c == '.':
			return slicex.Advance(pos), Token{Kind: Dot, Pos: pos}
		case c == '\n':
			return slicex.Advance(pos), Token{Kind: Newline, Pos: pos}
		case parsetools.IsDigit(c):
			next, n := parsetools.ReadNumber(in, pos)
			return next, Token{Kind: Number, Number: n, Text: string(in[pos:next]), Pos: pos}
		case unicode.IsPrint(c) && !unicode.IsSpace(c):
			return slicex.Advance(pos), Token{Kind: Symbol, Text: string(c), Pos: pos}
		}
		parsetools.FailMalformedCharacter(pos, c)
		return pos, Token{}
	})
}
