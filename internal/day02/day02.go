// Package day02 solves "Cube Conundrum": checking games of colored cubes
// drawn from a bag.
package day02

import "github.com/msto63/aoc2023/internal/puzzle"

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 2, Title: "Cube Conundrum", Solve: Solve})
}

// Solve parses the game records once and evaluates both parts
func Solve(input []rune) puzzle.Answers {
	games := Parse(Lex(input))
	return puzzle.Answers{
		Part1: SumPossibleIDs(games, Limits),
		Part2: SumPowers(games),
	}
}
