// File: parser.go
// Title: Camel Cards Parser
// Description: Recursive-descent parser for hands.
//
//   hand = Card{5} Space Card{1,} [ Newline ]
//
//              The first run holds exactly five labels; the second run is
//              the bid and may only contain digits.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day07

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// HandSize is the number of labels in a hand
const HandSize = 5

// Hand is a set of five labels and the bid placed on it
type Hand struct {
	Labels [HandSize]rune
	Bid    int
}

// Parse parses every hand. Blank lines are ignored.
func Parse(tokens []Token) []Hand {
	var hands []Hand

	pos := parsetools.SkipAll(tokens, 0, Newline)
	for !slicex.IsAtEnd(tokens, pos) {
		var hand Hand
		pos, hand = parseHand(tokens, pos)
		hands = append(hands, hand)
		pos = parsetools.SkipAll(tokens, pos, Newline)
	}

	return hands
}

func parseHand(tokens []Token, pos parsetools.Index) (parsetools.Index, Hand) {
	var hand Hand

	start := pos
	pos, labels := parsetools.ConsumeWhile(tokens, pos, Card)
	if len(labels) != HandSize {
		parsetools.FailArity(start, HandSize, len(labels))
	}
	for i, tok := range labels {
		label := []rune(tok.Text)[0]
		if label == '0' || label == '1' {
			parsetools.FailUnexpected(tokens, start+i, "card label")
		}
		hand.Labels[i] = label
	}

	pos = parsetools.ExpectConsume(tokens, pos, Space)

	bidStart := pos
	pos, digits := parsetools.ConsumeWhile(tokens, pos, Card)
	if len(digits) == 0 {
		parsetools.FailUnexpected(tokens, pos, "bid")
	}
	for i, tok := range digits {
		d := []rune(tok.Text)[0]
		if !parsetools.IsDigit(d) {
			parsetools.FailUnexpected(tokens, bidStart+i, "bid digit")
		}
		hand.Bid = hand.Bid*10 + int(d-'0')
	}

	if !slicex.IsAtEnd(tokens, pos) {
		pos = parsetools.ExpectConsume(tokens, pos, Newline)
	}
	return pos, hand
}
