// File: combinators.go
// Title: Parser Combinator Helpers
// Description: Run-collecting helpers layered on the token matching
//              utilities.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package parsetools

import "github.com/msto63/aoc2023/foundation/utils/slicex"

// ConsumeNumbersWhile collects extract(tok) for the run of tokens tagged
// numberTag starting at pos. It returns the position of the first token
// outside the run. Zero matches yields pos unchanged and an empty slice,
// leaving it to the caller to decide whether that is an error.
func ConsumeNumbersWhile[K comparable](tokens []Token[K], pos Index, numberTag K, extract func(Token[K]) int) (Index, []int) {
	numbers := []int{}
	for {
		next, ok := TryConsume(tokens, pos, numberTag)
		if !ok {
			return pos, numbers
		}
		numbers = append(numbers, extract(tokens[pos]))
		pos = next
	}
}

// ConsumeExactly is ConsumeNumbersWhile for fixed-size constructs: any run
// length other than n raises an ARITY_VIOLATION fault at pos.
func ConsumeExactly[K comparable](tokens []Token[K], pos Index, numberTag K, n int, extract func(Token[K]) int) (Index, []int) {
	next, numbers := ConsumeNumbersWhile(tokens, pos, numberTag, extract)
	if len(numbers) != n {
		FailArity(pos, n, len(numbers))
	}
	return next, numbers
}

// ConsumeWhile collects the run of tokens tagged kind starting at pos.
func ConsumeWhile[K comparable](tokens []Token[K], pos Index, kind K) (Index, []Token[K]) {
	start := pos
	for !slicex.IsAtEnd(tokens, pos) && tokens[pos].Kind == kind {
		pos = slicex.Advance(pos)
	}
	return pos, slicex.Extend(nil, tokens[start:pos])
}
