// File: lexer.go
// Title: Camel Cards Lexer
// Description: Tokenizes hands such as "32T3K 765". Card labels and bid
//              digits share the Card token; the parser tells them apart by
//              position.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day07

import (
	"strings"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Kind is the token tag of the hand list grammar
type Kind int

const (
	Card Kind = iota
	Space
	Newline
)

func (k Kind) String() string {
	switch k {
	case Card:
		return "Card"
	case Space:
		return "Space"
	case Newline:
		return "Newline"
	default:
		return "Unknown"
	}
}

// Token is a hand list token; Card tokens carry their character in Text
type Token = parsetools.Token[Kind]

const cardChars = "0123456789AKQJT"

// Lex tokenizes a list of hands, one token per character
func Lex(input []rune) []Token {
	return parsetools.Transform(input, func(in []rune, pos parsetools.Index) (parsetools.Index, Token) {
		c := in[pos]
		next := slicex.Advance(pos)
		switch {
		case strings.ContainsRune(cardChars, c):
			return next, Token{Kind: Card, Text: string(c), Pos: pos}
		case c == ' ':
			return next, Token{Kind: Space, Pos: pos}
		case c == '\n':
			return next, Token{Kind: Newline, Pos: pos}
		}
		parsetools.FailMalformedCharacter(pos, c)
		return pos, Token{}
	})
}
