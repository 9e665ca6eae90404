package day05

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Convert maps x through the first entry covering it. Numbers not covered
// by any entry map to themselves.
func (m Mapping) Convert(x int) int {
	for _, e := range m.Entries {
		if x >= e.Src && x < e.Src+e.Len {
			return e.Dest + (x - e.Src)
		}
	}
	return x
}

// Location follows seed through every mapping in almanac order
func (a Almanac) Location(seed int) int {
	return slicex.Reduce(a.Mappings, seed, func(x int, m Mapping) int { return m.Convert(x) })
}

// LowestLocation is the smallest location of any listed seed
func LowestLocation(a Almanac) int {
	lowest, _ := slicex.Min(slicex.Map(a.Initial.Numbers, a.Location))
	return lowest
}

// Interval is the half-open range [Start, End)
type Interval struct {
	Start int
	End   int
}

// SeedRanges reads the initial numbers as (start, length) pairs. An odd
// count raises an ARITY_VIOLATION fault.
func SeedRanges(a Almanac) []Interval {
	pairs := slicex.Chunk(a.Initial.Numbers, 2)
	return slicex.Map(pairs, func(pair []int) Interval {
		if len(pair) != 2 {
			parsetools.FailArity(a.Initial.Pos, 2, len(pair))
		}
		return Interval{Start: pair[0], End: pair[0] + pair[1]}
	})
}

// ConvertIntervals maps every interval through m, splitting intervals that
// straddle entry boundaries.
func (m Mapping) ConvertIntervals(in []Interval) []Interval {
	var out []Interval

	pending := in
	for _, e := range m.Entries {
		var rest []Interval
		for _, iv := range pending {
			lo, hi := max(iv.Start, e.Src), min(iv.End, e.Src+e.Len)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}

			shift := e.Dest - e.Src
			out = append(out, Interval{Start: lo + shift, End: hi + shift})
			if iv.Start < lo {
				rest = append(rest, Interval{Start: iv.Start, End: lo})
			}
			if hi < iv.End {
				rest = append(rest, Interval{Start: hi, End: iv.End})
			}
		}
		pending = rest
	}

	return slicex.Extend(out, pending)
}

// LowestRangeLocation is the smallest location of any seed in the seed
// ranges.
func LowestRangeLocation(a Almanac) int {
	intervals := SeedRanges(a)
	for _, m := range a.Mappings {
		intervals = m.ConvertIntervals(intervals)
	}

	starts := slicex.Map(slicex.Filter(intervals, func(iv Interval) bool { return iv.End > iv.Start }),
		func(iv Interval) int { return iv.Start })
	lowest, _ := slicex.Min(starts)
	return lowest
}
