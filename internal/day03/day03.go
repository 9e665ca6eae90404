// Package day03 solves "Gear Ratios": finding part numbers and gears on an
// engine schematic.
package day03

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 3, Title: "Gear Ratios", Solve: Solve})
}

// Solve parses the schematic once and evaluates both parts
func Solve(input []rune) puzzle.Answers {
	s := Parse(Lex(input))
	return puzzle.Answers{
		Part1: SumPartNumbers(s),
		Part2: SumGearRatios(s),
	}
}
