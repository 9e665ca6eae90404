package days

import (
	"testing"

	"github.com/msto63/aoc2023/internal/puzzle"
)

func TestAllDaysRegistered(t *testing.T) {
	days := puzzle.Days()
	if len(days) != 7 {
		t.Fatalf("Days() = %v, want 7 days", days)
	}
	for i, day := range days {
		if day != i+1 {
			t.Errorf("Days()[%d] = %d, want %d", i, day, i+1)
		}
		p, err := puzzle.Lookup(day)
		if err != nil {
			t.Errorf("Lookup(%d) error = %v", day, err)
			continue
		}
		if p.Title == "" {
			t.Errorf("day %d has no title", day)
		}
	}
}
