package day03

import "github.com/msto63/aoc2023/foundation/utils/slicex"

// Adjacent reports whether m touches n, diagonals included
func Adjacent(m Mark, n PartNumber) bool {
	if m.Row < n.Row-1 || m.Row > n.Row+1 {
		return false
	}
	return m.Col >= n.Col-1 && m.Col <= n.Col+n.Len
}

// Neighbours returns the numbers adjacent to every mark, in mark order.
// Numbers are looked up by row so each mark only inspects three rows.
// Numbers are told apart by position, not value: in "5*5" the mark has two
// neighbours and counts as a gear. Deduplicating by value would see one.
func (s Schematic) Neighbours() [][]PartNumber {
	byRow := make(map[int][]PartNumber)
	for _, n := range s.Numbers {
		byRow[n.Row] = append(byRow[n.Row], n)
	}

	result := make([][]PartNumber, len(s.Marks))
	for i, m := range s.Marks {
		for row := m.Row - 1; row <= m.Row+1; row++ {
			result[i] = append(result[i], slicex.Filter(byRow[row], func(n PartNumber) bool {
				return Adjacent(m, n)
			})...)
		}
	}
	return result
}

// SumPartNumbers sums, for every mark, the numbers adjacent to it. A number
// next to two marks counts twice.
func SumPartNumbers(s Schematic) int {
	return slicex.Sum(slicex.Map(s.Neighbours(), sumValues))
}

// SumGearRatios sums the product of the two numbers next to every '*' that
// touches exactly two numbers.
func SumGearRatios(s Schematic) int {
	total := 0
	for i, numbers := range s.Neighbours() {
		if s.Marks[i].Char != "*" || len(numbers) != 2 {
			continue
		}
		total += numbers[0].Value * numbers[1].Value
	}
	return total
}

func sumValues(numbers []PartNumber) int {
	return slicex.Sum(slicex.Map(numbers, func(n PartNumber) int { return n.Value }))
}
