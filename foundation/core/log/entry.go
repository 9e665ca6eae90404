// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure that holds all information
//              about a single log message.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2025-12-09 v0.2.0: Correlation id only, sorted field keys
// - 2025-12-10 v0.3.0: Caller reduced to file:line

package log

import (
	"sort"
	"time"
)

// Entry is a single log message with its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// CorrelationID ties together all entries of one command invocation
	CorrelationID string

	Fields Fields
	Error  error

	// Caller is "file:line" of the logging call, empty unless enabled
	Caller string
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
