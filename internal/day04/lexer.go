// File: lexer.go
// Title: Scratchcards Lexer
// Description: Tokenizes cards such as "Card 1: 41 48 | 83 86 6".
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day04

import (
	"unicode"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the scratchcard grammar
type Kind int

const (
	Blank Kind = iota
	Card
	Number
	Colon
	Pipe
	Newline
)

var kindNames = [...]string{"Blank", "Card", "Number", "Colon", "Pipe", "Newline"}

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

// Token is a scratchcard token
type Token = parsetools.Token[Kind]

// Lex tokenizes a pile of scratchcards
func Lex(input []rune) []Token {
	tokens := parsetools.Transform(input, func(in []rune, pos parsetools.Index) (parsetools.Index, Token) {
		c := in[pos]
		switch {
		case c == ' ':
			return parsetools.SkipWhitespace(in, pos), Token{Kind: Blank, Pos: pos}
		case c == ':':
			return slicex.Advance(pos), Token{Kind: Colon, Pos: pos}
		case c == '|':
			return slicex.Advance(pos), Token{Kind: Pipe, Pos: pos}
		case c == '\n':
			return slicex.Advance(pos), Token{Kind: Newline, Pos: pos}
		case parsetools.IsDigit(c):
			next, n := parsetools.ReadNumber(in, pos)
			return next, Token{Kind: Number, Number: n, Pos: pos}
		case unicode.IsLetter(c):
			next, word := parsetools.ReadIdentifier(in, pos)
			if word != "Card" {
				parsetools.FailMalformedWord(pos, word)
			}
			return next, Token{Kind: Card, Pos: pos}
		}
		parsetools.FailMalformedCharacter(pos, c)
		return pos, Token{}
	})

	return parsetools.Without(tokens, Blank)
}
