// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields, multiple output formats and
//              integration with the coded error system. Loggers are
//              immutable: every With* call returns a derived copy.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-12-09 v0.2.0: Synchronous writes only, correlation id per run
// - 2025-12-10 v0.3.0: Error category in LogError fields, reduced API

package log

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"runtime"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
)

// Logger writes structured entries at or above its minimum level
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	fields        Fields
	correlationID string
	caller        bool
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	// Output defaults to stderr
	Output io.Writer
	Name   string
	// EnableCaller adds file:line of the logging call to every entry
	EnableCaller bool
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: formatterFor(config.Format),
		output:    output,
		name:      config.Name,
		fields:    make(Fields),
		caller:    config.EnableCaller,
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

// WithField returns a logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := *l
	clone.fields = maps.Clone(l.fields)
	clone.fields[key] = value
	return &clone
}

// WithCorrelationID returns a logger that tags every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	clone := *l
	clone.correlationID = id
	return &clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// LogError logs err at a level derived from its severity. Coded errors add
// their code, category, operation and details as error_* fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	coded, ok := aocerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     coded.Code(),
		"error_category": coded.Code().Category(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	if coded.Severity() == aocerror.SeverityMedium {
		level = LevelWarn
	}
	l.log(level, err.Error(), err, fields)
}

// StartTimer starts a timer for operation
func (l *Logger) StartTimer(operation string) *Timer {
	return newTimer(l, operation)
}

// log writes one entry if level passes the minimum level
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := newEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	maps.Copy(entry.Fields, l.fields)
	for _, set := range fields {
		maps.Copy(entry.Fields, set)
	}

	if l.caller {
		// runtime.Caller, log, exported method, calling code
		if _, file, line, ok := runtime.Caller(2); ok {
			entry.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}

	if formatted, formatErr := l.formatter.Format(entry); formatErr == nil {
		_, _ = l.output.Write(formatted)
	}
}
