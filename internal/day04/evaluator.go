package day04

import "github.com/msto63/aoc2023/foundation/utils/slicex"

// Matches counts the numbers you have that are winning numbers
func (c Scratchcard) Matches() int {
	return len(slicex.Intersect(c.Have, c.Winning))
}

// Points is 1 for the first match, doubled for each further match
func (c Scratchcard) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// TotalPoints sums the points of all cards
func TotalPoints(cards []Scratchcard) int {
	return slicex.Sum(slicex.Map(cards, Scratchcard.Points))
}

// TotalCards counts the cards you end up with when every card with m
// matches wins a copy of each of the next m cards. Copies never extend
// past the last card.
func TotalCards(cards []Scratchcard) int {
	copies := slicex.Repeat(1, len(cards))
	for i, card := range cards {
		for j := i + 1; j <= i+card.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return slicex.Sum(copies)
}
