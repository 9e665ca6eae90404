// Package day06 solves "Wait For It": counting the ways to win toy boat
// races.
package day06

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 6, Title: "Wait For It", Solve: Solve})
}

// Solve parses the sheet once and evaluates both parts
func Solve(input []rune) puzzle.Answers {
	sheet := Parse(Lex(input))
	return puzzle.Answers{
		Part1: sheet.MarginOfError(),
		Part2: sheet.Joined().WaysToWin(),
	}
}
