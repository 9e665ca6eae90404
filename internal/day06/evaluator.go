package day06

import (
	"math/big"
	"sort"

	"github.com/msto63/aoc2023/foundation/parsetools"
)

// beats reports whether holding the button for hold travels further than
// the record. hold * (Duration - hold) > Record is tested by division so
// that durations near the int range do not overflow.
func (r Race) beats(hold int) bool {
	if hold <= 0 || hold >= r.Duration {
		return r.Record < 0
	}
	return r.Duration-hold > r.Record/hold
}

// WaysToWin counts the hold times that beat the record. Distance grows with
// hold up to half the duration and is symmetric around it, so the answer
// follows from the shortest winning hold.
func (r Race) WaysToWin() int {
	half := r.Duration / 2
	shortest := sort.Search(half+1, r.beats)
	if shortest > half {
		return 0
	}
	return r.Duration - 2*shortest + 1
}

// MarginOfError multiplies the ways to win of every race. A product that
// does not fit an int raises NUMBER_OVERFLOW at the start of the sheet.
func (s Sheet) MarginOfError() int {
	product := big.NewInt(1)
	for _, race := range s.Races() {
		product.Mul(product, big.NewInt(int64(race.WaysToWin())))
	}
	if !product.IsInt64() {
		parsetools.FailNumberOverflow(s.Pos, product.String())
	}
	return int(product.Int64())
}
