// File: puzzle.go
// Title: Puzzle Registry
// Description: Registry of the daily solvers. Each day package registers
//              a Puzzle from its init function; the CLI looks puzzles up by
//              day number.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package puzzle

import (
	"fmt"
	"sort"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
)

// Answers holds the two results of a puzzle
type Answers struct {
	Part1 int
	Part2 int
}

// Lines renders the answers as printed on stdout
func (a Answers) Lines(day int) []string {
	return []string{
		fmt.Sprintf("Day %d Part 1 answer: %d", day, a.Part1),
		fmt.Sprintf("Day %d Part 2 answer: %d", day, a.Part2),
	}
}

// SolveFunc computes both answers from the raw input characters. Lexer and
// parser faults are raised by panicking; see Run.
type SolveFunc func(input []rune) Answers

// Puzzle describes one registered solver
type Puzzle struct {
	Day   int
	Title string
	Solve SolveFunc
}

var registry = make(map[int]Puzzle)

// Register adds p to the registry. Registering a day twice, or a puzzle
// without a solver, panics.
func Register(p Puzzle) {
	if p.Solve == nil {
		panic(fmt.Sprintf("puzzle: Register day %d without Solve", p.Day))
	}
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("puzzle: Register called twice for day %d", p.Day))
	}
	registry[p.Day] = p
}

// Lookup returns the puzzle registered for day
func Lookup(day int) (Puzzle, error) {
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, aocerror.Newf("no puzzle registered for day %d", day).
			WithCode(aocerror.CodeUnknownPuzzle).
			WithDetail("day", day)
	}
	return p, nil
}

// All returns every registered puzzle ordered by day
func All() []Puzzle {
	puzzles := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool { return puzzles[i].Day < puzzles[j].Day })
	return puzzles
}

// Days returns the registered day numbers in ascending order
func Days() []int {
	days := make([]int, 0, len(registry))
	for _, p := range All() {
		days = append(days, p.Day)
	}
	return days
}
