// File: puzzle_test.go
// Title: Puzzle Registry and Execution Tests
// Description: Tests for registration, lookup, input reading and the fault
//              boundary in Run.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial test implementation

package puzzle

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	aoclog "github.com/msto63/aoc2023/foundation/core/log"
	"github.com/msto63/aoc2023/foundation/parsetools"
)

// withRegistry swaps in an empty registry for the duration of a test
func withRegistry(t *testing.T) {
	t.Helper()
	saved := registry
	registry = make(map[int]Puzzle)
	t.Cleanup(func() { registry = saved })
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func countLines(input []rune) Answers {
	return Answers{Part1: strings.Count(string(input), "\n"), Part2: len(input)}
}

func TestRegisterLookupAll(t *testing.T) {
	withRegistry(t)

	Register(Puzzle{Day: 3, Title: "Three", Solve: countLines})
	Register(Puzzle{Day: 1, Title: "One", Solve: countLines})

	p, err := Lookup(3)
	if err != nil || p.Title != "Three" {
		t.Errorf("Lookup(3) = %+v, %v", p, err)
	}

	if _, err := Lookup(9); !aocerror.HasCode(err, aocerror.CodeUnknownPuzzle) {
		t.Errorf("Lookup(9) error = %v, want UNKNOWN_PUZZLE", err)
	}

	all := All()
	if len(all) != 2 || all[0].Day != 1 || all[1].Day != 3 {
		t.Errorf("All() = %+v", all)
	}
	days := Days()
	if len(days) != 2 || days[0] != 1 || days[1] != 3 {
		t.Errorf("Days() = %v", days)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"duplicate day", func() {
			Register(Puzzle{Day: 1, Solve: countLines})
			Register(Puzzle{Day: 1, Solve: countLines})
		}},
		{"missing solver", func() { Register(Puzzle{Day: 2}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t)
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			tt.run()
		})
	}
}

func TestAnswersLines(t *testing.T) {
	lines := Answers{Part1: 142, Part2: 281}.Lines(1)
	want := []string{"Day 1 Part 1 answer: 142", "Day 1 Part 2 answer: 281"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("Lines() = %q, want %q", lines, want)
	}
}

func TestReadInput(t *testing.T) {
	path := writeInput(t, "ab\n\xe9")

	input, err := ReadInput(path)
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if len(input) != 4 {
		t.Fatalf("len(input) = %d, want 4 (one rune per byte)", len(input))
	}
	if input[3] != rune(0xe9) {
		t.Errorf("input[3] = %U, want U+00E9", input[3])
	}
}

func TestReadInputMissing(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.txt"))
	if !aocerror.HasCode(err, aocerror.CodeInputNotFound) {
		t.Errorf("ReadInput() error = %v, want INPUT_NOT_FOUND", err)
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	logger := aoclog.NewWithConfig(aoclog.Config{
		Level:  aoclog.LevelDebug,
		Format: aoclog.FormatText,
		Output: &buf,
	})

	p := Puzzle{Day: 4, Title: "Lines", Solve: countLines}
	answers, err := Run(context.Background(), logger, p, writeInput(t, "a\nb\n"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if answers.Part1 != 2 || answers.Part2 != 4 {
		t.Errorf("Run() = %+v", answers)
	}
	if !strings.Contains(buf.String(), "solve completed") {
		t.Errorf("missing timer entry:\n%s", buf.String())
	}
}

func TestRunConvertsFaults(t *testing.T) {
	p := Puzzle{Day: 7, Title: "Faulty", Solve: func(input []rune) Answers {
		parsetools.FailArity(0, 5, len(input))
		return Answers{}
	}}

	_, err := Run(context.Background(), aoclog.Discard(), p, writeInput(t, "AKQ"))

	e, ok := aocerror.As(err)
	if !ok || e.Code() != aocerror.CodeArityViolation {
		t.Fatalf("Run() error = %v, want ARITY_VIOLATION", err)
	}
	if day, _ := e.Detail("day"); day != 7 {
		t.Errorf("day detail = %v, want 7", day)
	}
	if actual, _ := e.Detail("actual"); actual != 3 {
		t.Errorf("actual detail = %v, want 3", actual)
	}
	if !strings.HasPrefix(err.Error(), "day 7: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	p := Puzzle{Day: 1, Solve: func([]rune) Answers { called = true; return Answers{} }}
	if _, err := Run(ctx, aoclog.Discard(), p, "unused"); err == nil {
		t.Error("Run() with cancelled context should fail")
	}
	if called {
		t.Error("solver should not run after cancellation")
	}
}
