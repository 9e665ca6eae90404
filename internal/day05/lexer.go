// File: lexer.go
// Title: Almanac Lexer
// Description: Tokenizes the seed almanac. Category names are identifiers;
//              "to" and "map" are keywords.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day05

import (
	"unicode"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the almanac grammar
type Kind int

const (
	Blank Kind = iota
	Ident
	Number
	Dash
	Colon
	Newline
	To
	Map
)

var kindNames = [...]string{"Blank", "Ident", "Number", "Dash", "Colon", "Newline", "To", "Map"}

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

// Token is an almanac token; Ident tokens carry the name in Text
type Token = parsetools.Token[Kind]

var keywords = map[string]Kind{
	"to":  To,
	"map": Map,
}

// Lex tokenizes an almanac
func Lex(input []rune) []Token {
	tokens := parsetools.Transform(input, func(in []rune, pos parsetools.Index) (parsetools.Index, Token) {
		c := in[pos]
		switch {
		case c == ' ':
			return parsetools.SkipWhitespace(in, pos), Token{Kind: Blank, Pos: pos}
		case c == '-':
			return slicex.Advance(pos), Token{Kind: Dash, Pos: pos}
		case c == ':':
			return slicex.Advance(pos), Token{Kind: Colon, Pos: pos}
		case c == '\n':
			return slicex.Advance(pos), Token{Kind: Newline, Pos: pos}
		case parsetools.IsDigit(c):
			next, n := parsetools.ReadNumber(in, pos)
			return next, Token{Kind: Number, Number: n, Pos: pos}
		case unicode.IsLetter(c):
			next, word := parsetools.ReadIdentifier(in, pos)
			if kind, ok := keywords[word]; ok {
				return next, Token{Kind: kind, Pos: pos}
			}
			return next, Token{Kind: Ident, Text: word, Pos: pos}
		}
		parsetools.FailMalformedCharacter(pos, c)
		return pos, Token{}
	})

	return parsetools.Without(tokens, Blank)
}
