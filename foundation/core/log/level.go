// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output. Each level carries its
//              long name, its three-letter tag for the text formatter and
//              the ANSI color used by the console formatter.
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-12-09 v0.2.0: Dropped audit level, table-driven level metadata
// - 2025-12-10 v0.2.1: DefaultLevel removed, callers use LevelInfo

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every lexer step; very noisy
	LevelTrace Level = iota

	// LevelDebug logs stage timings and input sizes
	LevelDebug

	// LevelInfo is the standard level for normal operation
	LevelInfo

	// LevelWarn indicates a recoverable problem
	LevelWarn

	// LevelError represents a failed command
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
}

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || int(l) >= len(levels) {
		return levelInfo{}, false
	}
	return levels[l], true
}

// String returns the string representation of the log level
func (l Level) String() string {
	if info, ok := l.info(); ok {
		return info.name
	}
	return "unknown"
}

// ShortString returns the three-letter tag of the log level
func (l Level) ShortString() string {
	if info, ok := l.info(); ok {
		return info.short
	}
	return "???"
}

// Color returns the ANSI color code for the log level (for console output)
func (l Level) Color() string {
	if info, ok := l.info(); ok {
		return info.color
	}
	return "\033[0m"
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name or one of its aliases
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if name == info.name {
			return Level(l), nil
		}
		for _, alias := range info.aliases {
			if name == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
