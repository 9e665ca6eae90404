// Package day04 solves "Scratchcards": scoring cards and cascading copies.
package day04

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 4, Title: "Scratchcards", Solve: Solve})
}

// Solve parses the cards once and evaluates both parts
func Solve(input []rune) puzzle.Answers {
	cards := Parse(Lex(input))
	return puzzle.Answers{
		Part1: TotalPoints(cards),
		Part2: TotalCards(cards),
	}
}
