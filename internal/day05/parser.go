// File: parser.go
// Title: Almanac Parser
// Description: Recursive-descent parser for the almanac. Both block kinds
//              start with an identifier; the token after it decides which
//              production applies.
//
//   almanac = initial { mapping }
//   initial = Ident Colon { Number } Newline
//   mapping = Ident Dash To Dash Ident Map Colon Newline { entry }
//   entry   = Number Number Number ( Newline | EOF )
//
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day05

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Initial is the leading block listing the seeds
type Initial struct {
	Category string
	Numbers  []int
	Pos      int
}

// Entry maps [Src, Src+Len) onto [Dest, Dest+Len)
type Entry struct {
	Dest int
	Src  int
	Len  int
}

// Mapping converts numbers of one category into another
type Mapping struct {
	From    string
	To      string
	Entries []Entry
}

// Almanac is the parsed almanac
type Almanac struct {
	Initial  Initial
	Mappings []Mapping
}

// Parse parses an almanac. The first block must be the initial block and
// every later block a mapping.
func Parse(tokens []Token) Almanac {
	var almanac Almanac

	pos := parsetools.SkipAll(tokens, 0, Newline)
	if _, ok := initialAhead(tokens, pos); !ok {
		parsetools.FailUnexpected(tokens, pos, "initial block")
	}
	pos, almanac.Initial = parseInitial(tokens, pos)

	for {
		pos = parsetools.SkipAll(tokens, pos, Newline)
		if slicex.IsAtEnd(tokens, pos) {
			return almanac
		}
		var m Mapping
		pos, m = parseMapping(tokens, pos)
		almanac.Mappings = append(almanac.Mappings, m)
	}
}

// initialAhead reports whether the block at pos is an initial block
func initialAhead(tokens []Token, pos parsetools.Index) (parsetools.Index, bool) {
	next, ok := parsetools.TryConsume(tokens, pos, Ident)
	if !ok {
		return pos, false
	}
	return parsetools.TryConsume(tokens, next, Colon)
}

func parseInitial(tokens []Token, pos parsetools.Index) (parsetools.Index, Initial) {
	start := pos
	pos, category := parsetools.ExpectValue(tokens, pos, Ident)
	pos = parsetools.ExpectConsume(tokens, pos, Colon)
	pos, numbers := parsetools.ConsumeNumbersWhile(tokens, pos, Number, parsetools.NumberOf[Kind])
	pos = parsetools.ExpectConsume(tokens, pos, Newline)

	return pos, Initial{Category: category.Text, Numbers: numbers, Pos: start}
}

func parseMapping(tokens []Token, pos parsetools.Index) (parsetools.Index, Mapping) {
	pos, from := parsetools.ExpectValue(tokens, pos, Ident)
	pos = parsetools.ExpectConsume(tokens, pos, Dash)
	pos = parsetools.ExpectConsume(tokens, pos, To)
	pos = parsetools.ExpectConsume(tokens, pos, Dash)
	pos, to := parsetools.ExpectValue(tokens, pos, Ident)
	pos = parsetools.ExpectConsume(tokens, pos, Map)
	pos = parsetools.ExpectConsume(tokens, pos, Colon)
	pos = parsetools.ExpectConsume(tokens, pos, Newline)

	m := Mapping{From: from.Text, To: to.Text}
	for {
		if _, ok := parsetools.TryConsume(tokens, pos, Number); !ok {
			return pos, m
		}

		var triple []int
		pos, triple = parsetools.ConsumeExactly(tokens, pos, Number, 3, parsetools.NumberOf[Kind])
		m.Entries = append(m.Entries, Entry{Dest: triple[0], Src: triple[1], Len: triple[2]})

		if !slicex.IsAtEnd(tokens, pos) {
			pos = parsetools.ExpectConsume(tokens, pos, Newline)
		}
	}
}
