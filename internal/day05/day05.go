// Package day05 solves "If You Give A Seed A Fertilizer": following seeds
// through a chain of category mappings.
package day05

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 5, Title: "If You Give A Seed A Fertilizer", Solve: Solve})
}

// Solve parses the almanac once and evaluates both parts
func Solve(input []rune) puzzle.Answers {
	almanac := Parse(Lex(input))
	return puzzle.Answers{
		Part1: LowestLocation(almanac),
		Part2: LowestRangeLocation(almanac),
	}
}
