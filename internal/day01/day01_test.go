package day01

import (
	"slices"
	"testing"
)

const sample1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const sample2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestLexDigitsOnly(t *testing.T) {
	tokens := Lex([]rune("a1b\n2"), false)

	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	if !slices.Equal(kinds, []Kind{Digit, Newline, Digit}) {
		t.Errorf("kinds = %v", kinds)
	}
	if tokens[0].Pos != 1 || tokens[2].Number != 2 {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestLexOverlappingNames(t *testing.T) {
	lines := Parse(Lex([]rune("eightwo"), true))
	if len(lines) != 1 || !slices.Equal(lines[0], []int{8, 2}) {
		t.Errorf("Parse(Lex(eightwo)) = %v, want [[8 2]]", lines)
	}
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		name   string
		digits []int
		want   int
	}{
		{"two digits", []int{1, 2}, 12},
		{"single digit doubles", []int{7}, 77},
		{"many digits", []int{1, 2, 3, 4, 5}, 15},
		{"no digits", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalibrationValue(tt.digits); got != tt.want {
				t.Errorf("CalibrationValue(%v) = %d, want %d", tt.digits, got, tt.want)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	lines := Parse(Lex([]rune(sample1), false))
	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4", len(lines))
	}
	if !slices.Equal(lines[2], []int{1, 2, 3, 4, 5}) {
		t.Errorf("lines[2] = %v", lines[2])
	}
}

func TestParseBlankLines(t *testing.T) {
	lines := Parse(Lex([]rune("1\n\n2"), false))
	if len(lines) != 3 || len(lines[1]) != 0 {
		t.Errorf("Parse() = %v", lines)
	}
}

func TestSamples(t *testing.T) {
	if got := Solve([]rune(sample1)).Part1; got != 142 {
		t.Errorf("Part1(sample1) = %d, want 142", got)
	}
	if got := Solve([]rune(sample2)).Part2; got != 281 {
		t.Errorf("Part2(sample2) = %d, want 281", got)
	}
}
