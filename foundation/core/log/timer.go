// File: timer.go
// Title: Stage Timer
// Description: Measures one stage of a run (reading input, solving a day)
//              and logs its duration once when the stage ends.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-12-09 v0.2.0: Single finish path, checkpoints removed
// - 2025-12-10 v0.3.0: Completion always at debug level

package log

import (
	"time"
)

// Timer measures the duration of a named operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	stopped   bool
}

func newTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop ends the timer and logs "<operation> completed" at debug level.
// Only the first call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError ends the timer and logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := time.Since(t.start)
	t.fields["duration_ms"] = float64(elapsed.Microseconds()) / 1000

	if err != nil {
		t.fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, t.fields)
	} else {
		t.logger.log(LevelDebug, t.operation+" completed", nil, t.fields)
	}
	return elapsed
}
