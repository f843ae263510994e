package core

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrPanic wraps a recovered panic value as an error.
// This is used when a user-provided function panics during stream processing.
// It includes a cleaned-up stack trace that excludes internal coldflow frames.
type ErrPanic struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// NewPanicError creates an ErrPanic from a recovered value with a cleaned stack trace.
// It captures the current stack and removes internal coldflow frames to show only
// user code, making it easier to identify where the panic originated.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // skip: runtime.Callers, captureStack, NewPanicError, defer func
	}
}

// captureStack returns the current stack trace as a string.
func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return sb.String()
}

// cleanStack removes internal coldflow frames from a stack trace.
// It keeps user code and standard library frames while filtering out
// github.com/avollmer/coldflow internal frames.
func cleanStack(stack string) string {
	lines := strings.Split(stack, "\n")
	var result []string
	var skipNext bool

	for _, line := range lines {
		// Skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Check if this is a function line (not a file:line)
		if !strings.HasPrefix(line, "\t") {
			// Skip internal coldflow frames
			if strings.Contains(line, "github.com/avollmer/coldflow/flow/") {
				skipNext = true
				continue
			}
			skipNext = false
		} else if skipNext {
			// Skip the file:line that follows a skipped function
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// Result represents the outcome of one emission in the stream.
// It exists in one of two states:
//   - Value: a successfully produced value (IsValue() returns true)
//   - Error: a production or transformation failure (IsError() returns true)
//
// Errors are terminal. A stage that receives an error Result forwards it
// downstream and stops consuming; a terminal driver that receives one
// cancels the run and returns the error. No error is ever recovered
// inside the pipeline.
type Result[OUT any] struct {
	value OUT
	err   error
}

// NewResult creates a Result with explicit control over both fields.
// Prefer Ok() or Err() for common cases.
func NewResult[OUT any](value OUT, err error) Result[OUT] {
	return Result[OUT]{value: value, err: err}
}

// Ok creates a successful Result containing the given value.
func Ok[OUT any](value OUT) Result[OUT] {
	return Result[OUT]{value: value}
}

// Err creates an error Result. The error terminates the run once it
// reaches a terminal driver.
func Err[OUT any](err error) Result[OUT] {
	var zero OUT
	return Result[OUT]{value: zero, err: err}
}

// IsValue returns true if this Result contains a successfully produced value.
func (r Result[OUT]) IsValue() bool {
	return r.err == nil
}

// IsError returns true if this Result carries the run's terminating error.
func (r Result[OUT]) IsError() bool {
	return r.err != nil
}

// Value returns the contained value. Only meaningful when IsValue() is true.
// Returns the zero value for an error Result.
func (r Result[OUT]) Value() OUT {
	return r.value
}

// Error returns the error if this is an error Result, nil otherwise.
func (r Result[OUT]) Error() error {
	return r.err
}

// Unwrap returns the value and error together.
// Useful for cases where you need both regardless of Result state.
func (r Result[OUT]) Unwrap() (OUT, error) {
	return r.value, r.err
}
