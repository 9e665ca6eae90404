// Package day07 solves "Camel Cards": ranking poker-like hands.
package day07

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 7, Title: "Camel Cards", Solve: Solve})
}

// Solve ranks the hands with standard rules for part 1 and with jokers for
// part 2
func Solve(input []rune) puzzle.Answers {
	hands := Parse(Lex(input))
	return puzzle.Answers{
		Part1: Standard.Winnings(hands),
		Part2: WithJokers.Winnings(hands),
	}
}
