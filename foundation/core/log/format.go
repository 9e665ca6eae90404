// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log messages: JSON, text, colored console
//              text and logfmt. Field keys are written in sorted order so
//              that text output is stable between runs.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2025-12-09 v0.2.0: Sorted field output, correlation id only
// - 2025-12-10 v0.3.0: Console output shares the text formatter

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored text logs
	FormatConsole

	// FormatLogfmt outputs logfmt structured logs (key=value pairs)
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

func (f Format) String() string {
	if f < FormatJSON || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name
func ParseFormat(format string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter renders an entry as one line of output
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

func formatterFor(format Format) Formatter {
	switch format {
	case FormatText:
		return &textFormatter{}
	case FormatConsole:
		return &textFormatter{colored: true}
	case FormatLogfmt:
		return logfmtFormatter{}
	default:
		return jsonFormatter{}
	}
}

type jsonFormatter struct{}

func (jsonFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+7)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(time.RFC3339)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Caller != "" {
		data["caller"] = entry.Caller
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		// Coded errors carry code, category, severity and details
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// textFormatter writes "time [LVL] {logger} (run=id) message [k=v ...]".
// Colored output wraps the line in the level's ANSI color.
type textFormatter struct {
	colored  bool
	omitTime bool
}

func (f *textFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	if !f.omitTime {
		parts = append(parts, entry.Timestamp.Format("15:04:05.000"))
	}
	parts = append(parts, "["+entry.Level.ShortString()+"]")
	if entry.Logger != "" {
		parts = append(parts, "{"+entry.Logger+"}")
	}
	if entry.CorrelationID != "" {
		parts = append(parts, "(run="+shortID(entry.CorrelationID)+")")
	}
	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fields := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.Keys() {
			fields = append(fields, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, "["+strings.Join(fields, " ")+"]")
	}
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	if entry.Caller != "" {
		parts = append(parts, "caller="+entry.Caller)
	}

	line := strings.Join(parts, " ")
	if f.colored {
		line = entry.Level.Color() + line + "\033[0m"
	}
	return []byte(line + "\n"), nil
}

type logfmtFormatter struct{}

func (logfmtFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		"timestamp=" + entry.Timestamp.Format(time.RFC3339),
		"level=" + entry.Level.String(),
		fmt.Sprintf("message=%q", entry.Message),
	}
	if entry.Logger != "" {
		parts = append(parts, "logger="+entry.Logger)
	}
	if entry.CorrelationID != "" {
		parts = append(parts, "correlation_id="+entry.CorrelationID)
	}

	for _, k := range entry.Fields.Keys() {
		if s, ok := entry.Fields[k].(string); ok {
			parts = append(parts, fmt.Sprintf("%s=%q", k, s))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
	}
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	if entry.Caller != "" {
		parts = append(parts, "caller="+entry.Caller)
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// shortID keeps the first block of a UUID
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
