// Package days registers every puzzle solver with the puzzle registry.
// Import it for side effects.
package days

import (
	_ "github.com/msto63/aoc2023/internal/day01"
	_ "github.com/msto63/aoc2023/internal/day02"
	_ "github.com/msto63/aoc2023/internal/day03"
	_ "github.com/msto63/aoc2023/internal/day04"
	_ "github.com/msto63/aoc2023/internal/day05"
	_ "github.com/msto63/aoc2023/internal/day06"
	_ "github.com/msto63/aoc2023/internal/day07"
)
