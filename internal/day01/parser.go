// File: parser.go
// Title: Trebuchet Calibration Parser and Evaluator
// Description: Groups digit tokens into lines and sums the two-digit
//              calibration values.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package day01

import (
	"github.com/msto63/aoc2023/foundation/parsetools"
	"github.com/msto63/aoc2023/foundation/utils/slicex"
)

// Parse returns the digits of every line. A trailing newline does not open
// an extra line.
func Parse(tokens []Token) [][]int {
	var lines [][]int

	pos := 0
	for !slicex.IsAtEnd(tokens, pos) {
		var digits []int
		pos, digits = parsetools.ConsumeNumbersWhile(tokens, pos, Digit, parsetools.NumberOf[Kind])
		if !slicex.IsAtEnd(tokens, pos) {
			pos = parsetools.ExpectConsume(tokens, pos, Newline)
		}
		lines = append(lines, digits)
	}

	return lines
}

// CalibrationValue combines the first and last digit of a line. A line
// without digits is worth 0.
func CalibrationValue(digits []int) int {
	if len(digits) == 0 {
		return 0
	}
	return digits[0]*10 + digits[len(digits)-1]
}

// Calibrate sums the calibration values of all lines
func Calibrate(lines [][]int) int {
	return slicex.Sum(slicex.Map(lines, CalibrationValue))
}
