// File: parser.go
// Title: Scratchcards Parser
// Description: Recursive-descent parser for scratchcards.
//
//   card = Card Number Colon { Number } Pipe { Number } [ Newline ]
//
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day04

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Scratchcard lists the winning numbers and the numbers you have
type Scratchcard struct {
	ID      int
	Winning []int
	Have    []int
}

// Parse parses every card. Blank lines are ignored.
func Parse(tokens []Token) []Scratchcard {
	var cards []Scratchcard

	pos := parsetools.SkipAll(tokens, 0, Newline)
	for !slicex.IsAtEnd(tokens, pos) {
		var card Scratchcard
		pos, card = parseCard(tokens, pos)
		cards = append(cards, card)
		pos = parsetools.SkipAll(tokens, pos, Newline)
	}

	return cards
}

func parseCard(tokens []Token, pos parsetools.Index) (parsetools.Index, Scratchcard) {
	var card Scratchcard

	pos = parsetools.ExpectConsume(tokens, pos, Card)
	pos, id := parsetools.ExpectValue(tokens, pos, Number)
	card.ID = id.Number
	pos = parsetools.ExpectConsume(tokens, pos, Colon)

	pos, card.Winning = parsetools.ConsumeNumbersWhile(tokens, pos, Number, parsetools.NumberOf[Kind])
	pos = parsetools.ExpectConsume(tokens, pos, Pipe)
	pos, card.Have = parsetools.ConsumeNumbersWhile(tokens, pos, Number, parsetools.NumberOf[Kind])

	if !slicex.IsAtEnd(tokens, pos) {
		pos = parsetools.ExpectConsume(tokens, pos, Newline)
	}
	return pos, card
}
