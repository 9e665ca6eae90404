// File: match.go
// Title: Token Matching Utilities
// Description: Tagged token type and the tag-only matching helpers that
//              recursive-descent parsers use to branch and to assert the
//              grammar.
// Version: v0.1.1
// Created: 2025-12-09
// Modified: 2025-12-10
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation
// - 2025-12-10 v0.1.1: Numeric kinds always render their value

package parsetools

import (
	"fmt"

	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Token is a tagged lexical value. Kind is the tag, Number and Text carry
// the optional payload and Pos is the source offset the token started at.
type Token[K comparable] struct {
	Kind   K
	Number int
	Text   string
	Pos    int
}

// NumericKind is implemented by token tags whose tokens carry a value in
// Number, so that a zero value still renders as Kind(0).
type NumericKind interface {
	IsNumeric() bool
}

// String renders the token as Kind or Kind(payload)
func (t Token[K]) String() string {
	switch {
	case t.Text != "":
		return fmt.Sprintf("%v(%s)", t.Kind, t.Text)
	case t.Number != 0 || isNumeric(t.Kind):
		return fmt.Sprintf("%v(%d)", t.Kind, t.Number)
	default:
		return fmt.Sprint(t.Kind)
	}
}

func isNumeric[K comparable](kind K) bool {
	n, ok := any(kind).(NumericKind)
	return ok && n.IsNumeric()
}

// Is reports whether the token carries the given tag
func (t Token[K]) Is(kind K) bool {
	return t.Kind == kind
}

// SameTag reports whether a and b carry the same tag, ignoring payload.
func SameTag[K comparable](a, b Token[K]) bool {
	return a.Kind == b.Kind
}

// NumberOf returns the numeric payload of t. It is the usual extract
// function for ConsumeNumbersWhile.
func NumberOf[K comparable](t Token[K]) int {
	return t.Number
}

// Peek returns the token at pos, or false when pos is past the end.
func Peek[K comparable](tokens []Token[K], pos Index) (Token[K], bool) {
	if slicex.IsAtEnd(tokens, pos) {
		var zero Token[K]
		return zero, false
	}
	return tokens[pos], true
}

// TryConsume returns (pos+1, true) when the token at pos carries want and
// (pos, false) otherwise, including at the end of input.
func TryConsume[K comparable](tokens []Token[K], pos Index, want K) (Index, bool) {
	tok, ok := Peek(tokens, pos)
	if !ok || tok.Kind != want {
		return pos, false
	}
	return slicex.Advance(pos), true
}

// ExpectConsume is TryConsume for positions where the grammar offers no
// alternative. A mismatch raises an UNEXPECTED_TOKEN fault.
func ExpectConsume[K comparable](tokens []Token[K], pos Index, want K) Index {
	next, ok := TryConsume(tokens, pos, want)
	if !ok {
		FailUnexpectedToken(tokens, pos, want)
	}
	return next
}

// ExpectValue is ExpectConsume that also returns the consumed token, for
// tokens whose payload the parser needs.
func ExpectValue[K comparable](tokens []Token[K], pos Index, want K) (Index, Token[K]) {
	next := ExpectConsume(tokens, pos, want)
	return next, tokens[pos]
}

// Without returns the tokens not tagged kind. Lexers use it to drop the
// filler tokens a step emits for skipped input.
func Without[K comparable](tokens []Token[K], kind K) []Token[K] {
	return slicex.Filter(tokens, func(t Token[K]) bool { return t.Kind != kind })
}

// SkipAll advances past every consecutive token tagged kind.
func SkipAll[K comparable](tokens []Token[K], pos Index, kind K) Index {
	for {
		next, ok := TryConsume(tokens, pos, kind)
		if !ok {
			return pos
		}
		pos = next
	}
}

// describe renders the token at pos for diagnostics
func describe[K comparable](tokens []Token[K], pos Index) string {
	tok, ok := Peek(tokens, pos)
	if !ok {
		return "EOF"
	}
	return tok.String()
}
