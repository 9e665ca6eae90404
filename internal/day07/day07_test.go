package day07

import (
	"testing"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	"github.com/msto63/aoc2023/foundation/parsetools"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func hand(labels string) [HandSize]rune {
	var h [HandSize]rune
	copy(h[:], []rune(labels))
	return h
}

func TestParse(t *testing.T) {
	hands := Parse(Lex([]rune(sample)))
	if len(hands) != 5 {
		t.Fatalf("len(hands) = %d, want 5", len(hands))
	}
	if hands[0].Labels != hand("32T3K") || hands[0].Bid != 765 {
		t.Errorf("hands[0] = %+v", hands[0])
	}
	if hands[3].Bid != 220 {
		t.Errorf("hands[3].Bid = %d, want 220", hands[3].Bid)
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		labels   string
		standard HandType
		jokers   HandType
	}{
		{"32T3K", OnePair, OnePair},
		{"T55J5", ThreeOfAKind, FourOfAKind},
		{"KK677", TwoPair, TwoPair},
		{"KTJJT", TwoPair, FourOfAKind},
		{"QQQJA", ThreeOfAKind, FourOfAKind},
		{"JJJJJ", FiveOfAKind, FiveOfAKind},
		{"23332", FullHouse, FullHouse},
		{"2345J", HighCard, OnePair},
		{"AAAAK", FourOfAKind, FourOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.labels, func(t *testing.T) {
			if got := Standard.Type(hand(tt.labels)); got != tt.standard {
				t.Errorf("Standard.Type() = %d, want %d", got, tt.standard)
			}
			if got := WithJokers.Type(hand(tt.labels)); got != tt.jokers {
				t.Errorf("WithJokers.Type() = %d, want %d", got, tt.jokers)
			}
		})
	}
}

func TestCompareTieBreak(t *testing.T) {
	a := Hand{Labels: hand("JKKK2")}
	b := Hand{Labels: hand("QQQQ2")}

	if Standard.Compare(a, b) >= 0 {
		t.Error("with standard rules JKKK2 should lose to QQQQ2")
	}
	if WithJokers.Compare(a, b) >= 0 {
		t.Error("with jokers JKKK2 should still lose to QQQQ2 on the first label")
	}
	if Standard.Compare(Hand{Labels: hand("33332")}, Hand{Labels: hand("2AAAA")}) <= 0 {
		t.Error("33332 should beat 2AAAA")
	}
}

func TestWinningsDoesNotReorderInput(t *testing.T) {
	hands := Parse(Lex([]rune(sample)))
	Standard.Winnings(hands)
	if hands[0].Bid != 765 {
		t.Error("Winnings() reordered its input")
	}
}

func TestSample(t *testing.T) {
	got := Solve([]rune(sample))
	if got.Part1 != 6440 {
		t.Errorf("Part1 = %d, want 6440", got.Part1)
	}
	if got.Part2 != 5905 {
		t.Errorf("Part2 = %d, want 5905", got.Part2)
	}
}

func TestFaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  aocerror.Code
	}{
		{"four labels", "32T3 765\n", aocerror.CodeArityViolation},
		{"six labels", "32T3KK 765\n", aocerror.CodeArityViolation},
		{"label in bid", "32T3K 7A5\n", aocerror.CodeUnexpectedToken},
		{"missing bid", "32T3K \n", aocerror.CodeUnexpectedToken},
		{"zero label", "3203K 1\n", aocerror.CodeUnexpectedToken},
		{"lowercase", "32t3K 1\n", aocerror.CodeMalformedCharacter},
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

func TestArityDetails(t *testing.T) {
	err := parsetools.Catch(func() { Parse(Lex([]rune("AKQ 1\n"))) })

	e, ok := aocerror.As(err)
	if !ok {
		t.Fatalf("error = %v", err)
	}
	if expected, _ := e.Detail("expected"); expected != HandSize {
		t.Errorf("expected = %v, want %d", expected, HandSize)
	}
	if actual, _ := e.Detail("actual"); actual != 3 {
		t.Errorf("actual = %v, want 3", actual)
	}
}
