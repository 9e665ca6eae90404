package day06

import (
	"testing"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	"github.com/msto63/aoc2023/foundation/parsetools"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestParse(t *testing.T) {
	sheet := Parse(Lex([]rune(sample)))

	races := sheet.Races()
	want := []Race{{7, 9}, {15, 40}, {30, 200}}
	if len(races) != len(want) {
		t.Fatalf("Races() = %+v", races)
	}
	for i := range want {
		if races[i] != want[i] {
			t.Errorf("races[%d] = %+v, want %+v", i, races[i], want[i])
		}
	}

	if joined := sheet.Joined(); joined != (Race{Duration: 71530, Record: 940200}) {
		t.Errorf("Joined() = %+v", joined)
	}
}

func TestWaysToWin(t *testing.T) {
	tests := []struct {
		race Race
		want int
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		{Race{4, 4}, 0},
		{Race{0, 0}, 0},
		{Race{2, 0}, 1},
		{Race{9999999999, 1}, 9999999998},
	}

	for _, tt := range tests {
		if got := tt.race.WaysToWin(); got != tt.want {
			t.Errorf("WaysToWin(%+v) = %d, want %d", tt.race, got, tt.want)
		}
	}
}

func TestSample(t *testing.T) {
	got := Solve([]rune(sample))
	if got.Part1 != 288 {
		t.Errorf("Part1 = %d, want 288", got.Part1)
	}
	if got.Part2 != 71503 {
		t.Errorf("Part2 = %d, want 71503", got.Part2)
	}
}

func TestFaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  aocerror.Code
	}{
		{"rows swapped", "Distance: 9\nTime: 7\n", aocerror.CodeUnexpectedToken},
		{"missing colon", "Time 7\nDistance: 9\n", aocerror.CodeUnexpectedToken},
		{"uneven rows", "Time: 7 15\nDistance: 9\n", aocerror.CodeArityViolation},
		{"unknown header", "Speed: 7\n", aocerror.CodeMalformedCharacter},
		{"trailing row", "Time: 7\nDistance: 9\nTime: 1\n", aocerror.CodeUnexpectedToken},
		{"margin overflows", "Time: 9999999999 9999999999\nDistance: 1 1\n", aocerror.CodeNumberOverflow},
		{"joined row overflows", "Time: 9999999999 9999999999 0\nDistance: 1 1 1\n", aocerror.CodeNumberOverflow},
		{"number overflows", "Time: 99999999999999999999\nDistance: 1\n", aocerror.CodeNumberOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parsetools.Catch(func() { Solve([]rune(tt.input)) })
			if !aocerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestJoinedOverflowPosition(t *testing.T) {
	sheet := Parse(Lex([]rune("Time: 9999999999 9999999999\nDistance: 1 1\n")))

	err := parsetools.Catch(func() { sheet.Joined() })
	e, ok := aocerror.As(err)
	if !ok || e.Code() != aocerror.CodeNumberOverflow {
		t.Fatalf("Joined() error = %v, want NUMBER_OVERFLOW", err)
	}
	if pos, _ := e.Detail("position"); pos != 6 {
		t.Errorf("position = %v, want 6", pos)
	}
	if text, _ := e.Detail("text"); text != "99999999999999999999" {
		t.Errorf("text = %v", text)
	}
}
