// Package day01 solves "Trebuchet?!": recovering calibration values from
// lines of text.
package day01

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 1, Title: "Trebuchet?!", Solve: Solve})
}

// Solve reads digits only for part 1 and digits or digit names for part 2
func Solve(input []rune) puzzle.Answers {
	return puzzle.Answers{
		Part1: Calibrate(Parse(Lex(input, false))),
		Part2: Calibrate(Parse(Lex(input, true))),
	}
}
