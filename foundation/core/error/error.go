// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, operation and
//              key-value details. Lexer and parser faults are reported as
//              *Error values so that positions and offending tokens travel
//              with the error up to the command line.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2025-12-09 v0.2.0: Dropped user/request context and i18n keys, errors.As lookups
// - 2025-12-10 v0.3.0: Dropped stack traces and timestamps; log entries carry both

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error with severity, the failing operation and details
// such as the position and the offending token of a fault.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates an uncoded Error
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates an uncoded Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap prefixes err with message. A coded cause passes its code, severity,
// operation and a copy of its details on to the wrapper.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	if inner, ok := As(err); ok {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.operation = inner.operation
		maps.Copy(wrapped.details, inner.details)
	}
	return wrapped
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code. The severity follows the code unless it was
// changed from the default before.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = code.Severity()
	}
	return e
}

// WithDetail adds a key-value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation names the operation that failed ("lex", "parse", ...)
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

func (e *Error) Code() Code { return e.code }

func (e *Error) Severity() Severity { return e.severity }

func (e *Error) Operation() string { return e.operation }

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	return maps.Clone(e.details)
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// MarshalJSON renders the error for the JSON log formatter
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"category": e.code.Category(),
		"severity": e.severity.String(),
		"details":  e.details,
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err's chain carries a coded error with code
func HasCode(err error, code Code) bool {
	if e, ok := As(err); ok {
		return e.code == code
	}
	return false
}
