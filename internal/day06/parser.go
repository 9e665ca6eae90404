// File: parser.go
// Title: Boat Races Parser
// Description: Parser for the race sheet.
//
//   sheet = Time Colon { Number } Newline Distance Colon { Number } [ Newline ]
//
//              Part 1 reads one race per column. Part 2 joins the digits of
//              each row into a single race.
// Version: v0.1.1
// Created: 2025-12-09
// Modified: 2025-12-10
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation
// - 2025-12-10 v0.1.1: Joined rows that overflow int raise NUMBER_OVERFLOW

package day06

import (
	"strconv"
	"strings"

	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Race is a race duration and the distance to beat
type Race struct {
	Duration int
	Record   int
}

// Sheet holds the two rows of the race sheet as tokens
type Sheet struct {
	Times     []Token
	Distances []Token
	Pos       int
}

// Parse parses the race sheet
func Parse(tokens []Token) Sheet {
	var sheet Sheet

	pos := parsetools.SkipAll(tokens, 0, Newline)
	sheet.Pos = pos
	pos, sheet.Times = parseRow(tokens, pos, Time)
	pos = parsetools.ExpectConsume(tokens, pos, Newline)
	pos, sheet.Distances = parseRow(tokens, pos, Distance)

	pos = parsetools.SkipAll(tokens, pos, Newline)
	if !slicex.IsAtEnd(tokens, pos) {
		parsetools.FailUnexpected(tokens, pos, "end of sheet")
	}
	return sheet
}

func parseRow(tokens []Token, pos parsetools.Index, header Kind) (parsetools.Index, []Token) {
	pos = parsetools.ExpectConsume(tokens, pos, header)
	pos = parsetools.ExpectConsume(tokens, pos, Colon)
	return parsetools.ConsumeWhile(tokens, pos, Number)
}

// Races pairs the columns of the sheet. Rows of different length raise an
// ARITY_VIOLATION fault.
func (s Sheet) Races() []Race {
	if len(s.Times) != len(s.Distances) {
		parsetools.FailArity(s.Pos, len(s.Times), len(s.Distances))
	}

	pairs := slicex.Zip(s.Times, s.Distances)
	return slicex.Map(pairs, func(p slicex.Pair[Token, Token]) Race {
		return Race{Duration: p.First.Number, Record: p.Second.Number}
	})
}

// Joined reads each row as one number, ignoring the spacing between the
// columns. An empty row reads as 0; a row whose digits do not fit an int
// raises NUMBER_OVERFLOW at the row's first number.
func (s Sheet) Joined() Race {
	return Race{Duration: joinDigits(s.Times), Record: joinDigits(s.Distances)}
}

func joinDigits(row []Token) int {
	if len(row) == 0 {
		return 0
	}
	var b strings.Builder
	for _, tok := range row {
		b.WriteString(tok.Text)
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		parsetools.FailNumberOverflow(row[0].Pos, b.String())
	}
	return n
}
