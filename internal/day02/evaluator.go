package day02

import "github.com/msto63/aoc2023/foundation/utils/slicex"

// Bag holds the number of cubes of each color
type Bag map[string]int

// Limits is the bag the elf proposes for part 1
var Limits = Bag{Red: 12, Green: 13, Blue: 14}

// MinimalBag returns the fewest cubes of each color that make game possible
func MinimalBag(game GameRecord) Bag {
	bag := Bag{Red: 0, Green: 0, Blue: 0}
	for _, set := range game.Sets {
		for _, draw := range set {
			bag[draw.Color] = max(bag[draw.Color], draw.Count)
		}
	}
	return bag
}

// Possible reports whether every draw of game fits into limits
func Possible(game GameRecord, limits Bag) bool {
	for color, need := range MinimalBag(game) {
		if need > limits[color] {
			return false
		}
	}
	return true
}

// Power is the product of the minimal cube counts
func (b Bag) Power() int {
	return b[Red] * b[Green] * b[Blue]
}

// SumPossibleIDs sums the ids of the games possible with limits
func SumPossibleIDs(games []GameRecord, limits Bag) int {
	possible := slicex.Filter(games, func(g GameRecord) bool { return Possible(g, limits) })
	return slicex.Sum(slicex.Map(possible, func(g GameRecord) int { return g.ID }))
}

// SumPowers sums the power of every game's minimal bag
func SumPowers(games []GameRecord) int {
	return slicex.Sum(slicex.Map(games, func(g GameRecord) int { return MinimalBag(g).Power() }))
}
