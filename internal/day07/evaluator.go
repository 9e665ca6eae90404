package day07

import (
	"cmp"
	"slices"
	"strings"
)

// HandType ranks hands by their label groups
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Rules decides label strength and whether J acts as a joker
type Rules struct {
	Order  string
	Jokers bool
}

var (
	// Standard ranks J between T and Q
	Standard = Rules{Order: "23456789TJQKA"}
	// WithJokers makes J the weakest label and a wildcard
	WithJokers = Rules{Order: "J23456789TQKA", Jokers: true}
)

// Type classifies labels. With jokers, every J joins the largest group of
// the other labels.
func (r Rules) Type(labels [HandSize]rune) HandType {
	counts := make(map[rune]int, HandSize)
	jokers := 0
	for _, l := range labels {
		if r.Jokers && l == 'J' {
			jokers++
			continue
		}
		counts[l]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })

	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders hands by type, then label by label
func (r Rules) Compare(a, b Hand) int {
	if c := cmp.Compare(r.Type(a.Labels), r.Type(b.Labels)); c != 0 {
		return c
	}
	for i := range a.Labels {
		sa := strings.IndexRune(r.Order, a.Labels[i])
		sb := strings.IndexRune(r.Order, b.Labels[i])
		if c := cmp.Compare(sa, sb); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings sorts the hands by strength and sums bid times rank. hands is
// not modified.
func (r Rules) Winnings(hands []Hand) int {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, r.Compare)

	total := 0
	for i, h := range ranked {
		total += h.Bid * (i + 1)
	}
	return total
}
