// File: lexer.go
// Title: Cube Conundrum Lexer
// Description: Tokenizes game records such as
//              "Game 1: 3 blue, 4 red; 1 red, 2 green".
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day02

import (
	"unicode"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the game record grammar
type Kind int

const (
	Blank Kind = iota
	Game
	Number
	Color
	Colon
	Comma
	Semicolon
	Newline
)

var kindNames = [...]string{"Blank", "Game", "Number", "Color", "Colon", "Comma", "Semicolon", "Newline"}

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

// Token is a game record token. Number tokens carry their value, Color
// tokens the color name in Text.
type Token = parsetools.Token[Kind]

var punctuation = map[rune]Kind{
	':':  Colon,
	',':  Comma,
	';':  Semicolon,
	'\n': Newline,
}

// Lex tokenizes a list of game records
func Lex(input []rune) []Token {
	tokens := parsetools.Transform(input, step)
	return parsetools.Without(tokens, Blank)
}

func step(input []rune, pos parsetools.Index) (parsetools.Index, Token) {
	if input[pos] == ' ' {
		return parsetools.SkipWhitespace(input, pos), Token{Kind: Blank, Pos: pos}
	}

	c := input[pos]
	if kind, ok := punctuation[c]; ok {
		return slicex.Advance(pos), Token{Kind: kind, Pos: pos}
	}

	switch {
	case parsetools.IsDigit(c):
		next, n := parsetools.ReadNumber(input, pos)
		return next, Token{Kind: Number, Number: n, Pos: pos}
	case unicode.IsLetter(c):
		next, word := parsetools.ReadIdentifier(input, pos)
		switch word {
		case "Game":
			return next, Token{Kind: Game, Pos: pos}
		case Red, Green, Blue:
			return next, Token{Kind: Color, Text: word, Pos: pos}
		}
		parsetools.FailMalformedWord(pos, word)
	}

	parsetools.FailMalformedCharacter(pos, c)
	return pos, Token{}
}
