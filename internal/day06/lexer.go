// File: lexer.go
// Title: Boat Races Lexer
// Description: Tokenizes the race sheet ("Time:" and "Distance:" rows).
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day06

import (
	"unicode"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the race sheet grammar
type Kind int

const (
	Blank Kind = iota
	Time
	Distance
	Number
	Colon
	Newline
)

var kindNames = [...]string{"Blank", "Time", "Distance", "Number", "Colon", "Newline"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsNumeric reports whether tokens of kind k carry a value in Number
func (k Kind) IsNumeric() bool {
	return k == Number
}

// Token is a race sheet token. Number tokens keep their digits in Text so
// that part 2 can join them.
type Token = parsetools.Token[Kind]

// Lex tokenizes a race sheet
func Lex(input []rune) []Token {
	tokens := parsetools.Transform(input, func(in []rune, pos parsetools.Index) (parsetools.Index, Token) {
		c := in[pos]
		switch {
		case c == ' ':
			return parsetools.SkipWhitespace(in, pos), Token{Kind: Blank, Pos: pos}
		case c == ':':
			return slicex.Advance(pos), Token{Kind: Colon, Pos: pos}
		case c == '\n':
			return slicex.Advance(pos), Token{Kind: Newline, Pos: pos}
		case parsetools.IsDigit(c):
			next, n := parsetools.ReadNumber(in, pos)
			return next, Token{Kind: Number, Number: n, Text: string(in[pos:next]), Pos: pos}
		case unicode.IsLetter(c):
			next, word := parsetools.ReadIdentifier(in, pos)
			switch word {
			case "Time":
				return next, Token{Kind: Time, Pos: pos}
			case "Distance":
				return next, Token{Kind: Distance, Pos: pos}
			}
			parsetools.FailMalformedWord(pos, word)
		}
		parsetools.FailMalformedCharacter(pos, c)
		return pos, Token{}
	})

	return parsetools.Without(tokens, Blank)
}
