// File: slicex.go
// Title: Sequence and Slice Utilities
// Description: Sequence primitives used by the lexer/parser toolkit
//              (IsAtEnd, Append, Advance, Extend) plus the functional slice
//              helpers the puzzle evaluators fold their models with. Every
//              function treats its input as an immutable value: results are
//              always freshly allocated and never alias the arguments.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2025-12-09 v0.2.0: Sequence primitives, value-semantics Append, numeric
//                      helpers on x/exp/constraints

package slicex

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type
type Number interface {
	constraints.Integer | constraints.Float
}

// ===============================
// Sequence Primitives
// ===============================

// IsAtEnd reports whether pos lies at or beyond the end of seq.
func IsAtEnd[T any](seq []T, pos int) bool {
	return pos >= len(seq)
}

// Append returns a new slice holding seq followed by elem. seq itself is
// never modified and the result never shares its backing array.
func Append[T any](seq []T, elem T) []T {
	result := make([]T, len(seq), len(seq)+1)
	copy(result, seq)
	return append(result, elem)
}

// Advance returns the position after pos.
func Advance(pos int) int {
	return pos + 1
}

// Extend returns a new slice holding a followed by b.
func Extend[T any](a, b []T) []T {
	result := make([]T, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...)
}

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce reduces the slice to a single value using the provided function
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if slice == nil || reducer == nil {
		return initial
	}

	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// Chunk splits the slice into chunks of the specified size
func Chunk[T any](slice []T, size int) [][]T {
	if slice == nil || size <= 0 {
		return nil
	}

	var chunks [][]T
	for i := 0; i < len(slice); i += size {
		end := min(i+size, len(slice))
		chunks = append(chunks, slices.Clone(slice[i:end]))
	}
	return chunks
}

// Intersect returns the distinct elements present in both slices
func Intersect[T comparable](slice1, slice2 []T) []T {
	if slice1 == nil || slice2 == nil {
		return nil
	}

	set := make(map[T]bool, len(slice2))
	for _, item := range slice2 {
		set[item] = true
	}

	var result []T
	seen := make(map[T]bool)
	for _, item := range slice1 {
		if set[item] && !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// ===============================
// Search and Aggregation
// ===============================

// Min returns the minimum element (requires ordered type)
func Min[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}
	return slices.Min(slice), true
}

// Sum returns the sum of all elements
func Sum[T Number](slice []T) T {
	var sum T
	for _, item := range slice {
		sum += item
	}
	return sum
}

// ===============================
// Slice Creation and Comparison
// ===============================

// Repeat creates a slice with the element repeated n times
func Repeat[T any](element T, n int) []T {
	if n <= 0 {
		return nil
	}

	result := make([]T, n)
	for i := range result {
		result[i] = element
	}
	return result
}

// Equal checks if two slices hold the same elements in the same order
func Equal[T comparable](slice1, slice2 []T) bool {
	return slices.Equal(slice1, slice2)
}

// Pair represents a pair of values with type safety
type Pair[T, U any] struct {
	First  T
	Second U
}

// Zip combines two slices into a slice of pairs, truncated to the shorter one
func Zip[T, U any](slice1 []T, slice2 []U) []Pair[T, U] {
	if slice1 == nil || slice2 == nil {
		return nil
	}

	n := min(len(slice1), len(slice2))
	result := make([]Pair[T, U], n)
	for i := 0; i < n; i++ {
		result[i] = Pair[T, U]{First: slice1[i], Second: slice2[i]}
	}
	return result
}
