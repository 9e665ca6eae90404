// File: run.go
// Title: Puzzle Execution
// Description: Reads a puzzle input and runs its solver behind the fault
//              boundary, timing each stage with the structured logger.
// Version: v0.1.0
// Created: 2025-12-09
// Modified: 2025-12-09
//
// Change History:
// - 2025-12-09 v0.1.0: Initial implementation

package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	aoclog "github.com/msto63/aoc2023/foundation/core/log"
	"github.com/msto63/aoc2023/foundation/parsetools"
)

// ReadInput reads the file at path and maps every byte to one rune. No
// multi-byte decoding takes place.
func ReadInput(path string) ([]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		wrapped := aocerror.Wrap(err, "failed to read puzzle input").
			WithOperation("puzzle.ReadInput").
			WithDetail("path", path)
		if errors.Is(err, fs.ErrNotExist) {
			wrapped.WithCode(aocerror.CodeInputNotFound)
		}
		return nil, wrapped
	}

	input := make([]rune, len(data))
	for i, b := range data {
		input[i] = rune(b)
	}
	return input, nil
}

// Run reads the input at path and solves p. Lexer and parser faults raised
// by the solver are returned as errors carrying the day number.
func Run(ctx context.Context, logger *aoclog.Logger, p Puzzle, path string) (Answers, error) {
	if err := ctx.Err(); err != nil {
		return Answers{}, err
	}

	logger = logger.WithField("day", p.Day)

	input, err := ReadInput(path)
	if err != nil {
		return Answers{}, err
	}
	logger.Debug("input loaded", aoclog.Fields{"path": path, "chars": len(input)})

	timer := logger.StartTimer("solve").WithField("title", p.Title)
	answers, err := solve(p, input)
	if err != nil {
		timer.StopWithError(err)
		return Answers{}, aocerror.Wrap(err, fmt.Sprintf("day %d", p.Day)).
			WithDetail("day", p.Day)
	}
	timer.Stop()
	logger.Trace("answers computed", aoclog.Fields{"part1": answers.Part1, "part2": answers.Part2})

	return answers, nil
}

func solve(p Puzzle, input []rune) (answers Answers, err error) {
	defer parsetools.Recover(&err)
	return p.Solve(input), nil
}
