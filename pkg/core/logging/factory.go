// ============================================================================
// aoc2023 - Advent of Code 2023 Solvers
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the CLI loggers
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	aoclog "github.com/msto63/aoc2023/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	Name   string
	Level  string
	Format string
	// Output defaults to stderr so that answers on stdout stay clean
	Output io.Writer
	// RunID is attached to every entry as correlation id
	RunID string
	// Caller adds file:line of the logging call to every entry
	Caller bool
	// AdditionalOutputs receive a copy of every entry
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns the default configuration for a logger
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// NewLogger creates a logger from cfg. Unknown levels fall back to info,
// unknown formats to text.
func NewLogger(cfg LoggerConfig) *aoclog.Logger {
	level, err := aoclog.ParseLevel(cfg.Level)
	if err != nil {
		level = aoclog.LevelInfo
	}
	format, err := aoclog.ParseFormat(cfg.Format)
	if err != nil {
		format = aoclog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := aoclog.NewWithConfig(aoclog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.Caller,
	})
	if cfg.RunID != "" {
		logger = logger.WithCorrelationID(cfg.RunID)
	}
	return logger
}

// NewRunID returns a fresh identifier for one CLI invocation
func NewRunID() string {
	return uuid.NewString()
}
