// File: parser.go
// Title: Cube Conundrum Parser
// Description: Recursive-descent parser for game records.
//
//   record = Game Number Colon set { Semicolon set } [ Newline ]
//   set    = draw { Comma draw }
//   draw   = Number Color
//
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day02

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Cube colors
const (
	Red   = "red"
	Green = "green"
	Blue  = "blue"
)

// Draw is a number of cubes of one color
type Draw struct {
	Count int
	Color string
}

// GameRecord is one game: its id and the sets of cubes revealed
type GameRecord struct {
	ID   int
	Sets [][]Draw
}

// Parse parses every record. Blank lines between records are ignored.
func Parse(tokens []Token) []GameRecord {
	var games []GameRecord

	pos := parsetools.SkipAll(tokens, 0, Newline)
	for !slicex.IsAtEnd(tokens, pos) {
		var game GameRecord
		pos, game = parseRecord(tokens, pos)
		games = append(games, game)
		pos = parsetools.SkipAll(tokens, pos, Newline)
	}

	return games
}

func parseRecord(tokens []Token, pos parsetools.Index) (parsetools.Index, GameRecord) {
	pos = parsetools.ExpectConsume(tokens, pos, Game)
	pos, id := parsetools.ExpectValue(tokens, pos, Number)
	pos = parsetools.ExpectConsume(tokens, pos, Colon)

	game := GameRecord{ID: id.Number}

	var set []Draw
	pos, set = parseSet(tokens, pos)
	game.Sets = append(game.Sets, set)

	for {
		next, ok := parsetools.TryConsume(tokens, pos, Semicolon)
		if !ok {
			break
		}
		pos, set = parseSet(tokens, next)
		game.Sets = append(game.Sets, set)
	}

	if !slicex.IsAtEnd(tokens, pos) {
		pos = parsetools.ExpectConsume(tokens, pos, Newline)
	}
	return pos, game
}

func parseSet(tokens []Token, pos parsetools.Index) (parsetools.Index, []Draw) {
	var draws []Draw
	for {
		var draw Draw
		pos, draw = parseDraw(tokens, pos)
		draws = append(draws, draw)

		next, ok := parsetools.TryConsume(tokens, pos, Comma)
		if !ok {
			return pos, draws
		}
		pos = next
	}
}

func parseDraw(tokens []Token, pos parsetools.Index) (parsetools.Index, Draw) {
	pos, count := parsetools.ExpectValue(tokens, pos, Number)
	pos, color := parsetools.ExpectValue(tokens, pos, Color)
	return pos, Draw{Count: count.Number, Color: color.Text}
}
