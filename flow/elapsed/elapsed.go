// Package elapsed reports wall-clock time spent since a recorded
// start. Output uses the fixed line format
//
//	Time passed: <elapsed> ms | <message>
//
// which downstream tooling parses, so it must not change.
package elapsed

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Millis returns the current wall-clock time in milliseconds since the
// Unix epoch. Capture it before starting work and hand it to Log when
// the work is done.
func Millis() int64 {
	return time.Now().UnixMilli()
}

// Logger writes elapsed-time lines. The zero value writes to standard
// output using the real clock.
type Logger struct {
	// Out receives the formatted lines. Nil means os.Stdout.
	Out io.Writer

	// Now supplies the clock. Nil means time.Now.
	Now func() time.Time
}

// Log writes one elapsed-time line for a start time captured with
// Millis.
func (l *Logger) Log(startMillis int64, message string) {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintf(out, "Time passed: %d ms | %s\n", now().UnixMilli()-startMillis, message)
}

var std Logger

// Log writes one elapsed-time line to standard output.
func Log(startMillis int64, message string) {
	std.Log(startMillis, message)
}
