package day02

import (
	"testing"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	"github.com/msto63/aoc2023/foundation/parsetools"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestLex(t *testing.T) {
	tokens := Lex([]rune("Game 12: 3 blue;\n"))

	want := []Kind{Game, Number, Colon, Number, Color, Semicolon, Newline}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i], k)
		}
	}
	if tokens[1].Number != 12 || tokens[4].Text != Blue {
		t.Errorf("payloads lost: %v", tokens)
	}
}

func TestParse(t *testing.T) {
	games := Parse(Lex([]rune(sample)))
	if len(games) != 5 {
		t.Fatalf("len(games) = %d, want 5", len(games))
	}

	g := games[0]
	if g.ID != 1 || len(g.Sets) != 3 {
		t.Fatalf("games[0] = %+v", g)
	}
	if len(g.Sets[1]) != 3 || g.Sets[1][2] != (Draw{Count: 6, Color: Blue}) {
		t.Errorf("games[0].Sets[1] = %+v", g.Sets[1])
	}
}

func TestParseWithoutTrailingNewline(t *testing.T) {
	games := Parse(Lex([]rune("Game 7: 1 red")))
	if len(games) != 1 || games[0].ID != 7 {
		t.Errorf("Parse() = %+v", games)
	}
}

func TestMinimalBag(t *testing.T) {
	games := Parse(Lex([]rune(sample)))

	tests := []struct {
		game     int
		want     Bag
		power    int
		possible bool
	}{
		{0, Bag{Red: 4, Green: 2, Blue: 6}, 48, true},
		{2, Bag{Red: 20, Green: 13, Blue: 6}, 1560, false},
		{3, Bag{Red: 14, Green: 3, Blue: 15}, 630, false},
	}

	for _, tt := range tests {
		bag := MinimalBag(games[tt.game])
		for color, n := range tt.want {
			if bag[color] != n {
				t.Errorf("game %d: %s = %d, want %d", tt.game+1, color, bag[color], n)
			}
		}
		if bag.Power() != tt.power {
			t.Errorf("game %d: Power() = %d, want %d", tt.game+1, bag.Power(), tt.power)
		}
		if Possible(games[tt.game], Limits) != tt.possible {
			t.Errorf("game %d: Possible() = %v", tt.game+1, !tt.possible)
		}
	}
}

func TestSample(t *testing.T) {
	got := Solve([]rune(sample))
	if got.Part1 != 8 {
		t.Errorf("Part1 = %d, want 8", got.Part1)
	}
	if got.Part2 != 2286 {
		t.Errorf("Part2 = %d, want 2286", got.Part2)
	}
}

func TestFaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  aocerror.Code
	}{
		{"unknown color", "Game 1: 3 purple\n", aocerror.CodeMalformedCharacter},
		{"unknown character", "Game 1: 3 red!\n", aocerror.CodeMalformedCharacter},
		{"missing colon", "Game 1 3 red\n", aocerror.CodeUnexpectedToken},
		{"missing count", "Game 1: red\n", aocerror.CodeUnexpectedToken},
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
