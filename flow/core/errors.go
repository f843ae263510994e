package core

import (
	"errors"
	"fmt"
)

// ErrEmptyStream is returned by terminal drivers that require at least one
// value when the stream completes without producing any.
var ErrEmptyStream = errors.New("stream is empty")

// ErrMultipleValues is returned by Single when a second value arrives.
var ErrMultipleValues = errors.New("stream emitted more than one value")

// ErrTruncated is the cancellation cause used by truncating stages (Take,
// TakeWhile) when they stop consuming before the upstream is exhausted.
// Producers can check context.Cause to distinguish this cooperative unwind
// from an external cancellation.
var ErrTruncated = errors.New("stream truncated")

// ErrLaunchCancelled is the cancellation cause set by Handle.Cancel on a
// launched stream.
var ErrLaunchCancelled = errors.New("launch cancelled")

// ProducerError wraps an error raised inside a producer procedure.
// It surfaces to the run's consumer and terminates the run.
type ProducerError struct {
	Err error
}

func (e *ProducerError) Error() string {
	return fmt.Sprintf("producer failed: %v", e.Err)
}

func (e *ProducerError) Unwrap() error {
	return e.Err
}

// NewProducerError wraps err as a ProducerError. Returns nil for a nil err.
func NewProducerError(err error) error {
	if err == nil {
		return nil
	}
	return &ProducerError{Err: err}
}

// IsProducerError reports whether err is (or wraps) a ProducerError.
func IsProducerError(err error) bool {
	var pe *ProducerError
	return errors.As(err, &pe)
}
