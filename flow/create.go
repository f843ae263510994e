package flow

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// Create builds a Stream around a producer procedure. Each run executes
// the procedure from the start; emit hands one value downstream and
// suspends the producer until the consumer has accepted it.
//
// emit returns a non-nil error when the run has been cancelled; the
// value was not delivered and the procedure should return promptly,
// usually with that error. Cancellation is only observed at emit calls
// and at whatever context-aware waits the procedure performs itself, so
// code between those points always runs to completion.
//
// A non-nil error returned by the procedure (other than during
// cancellation unwind) terminates the run with a ProducerError wrapping
// it. A panic in the procedure does the same, wrapping the recovered
// value.
func Create[T any](producer func(ctx context.Context, emit func(T) error) error) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)

			emit := func(value T) error {
				select {
				case <-ctx.Done():
					return context.Cause(ctx)
				case out <- Ok(value):
					return nil
				}
			}

			err := runProducer(ctx, producer, emit)
			if err == nil {
				return
			}
			if ctx.Err() != nil {
				// Unwinding after cancellation; the run's outcome is the
				// cancellation itself, not this error.
				return
			}
			select {
			case <-ctx.Done():
			case out <- core.Err[T](core.NewProducerError(err)):
			}
		}()
		return out
	})
}

// runProducer isolates the user procedure so a panic becomes the run's
// terminating error instead of tearing down the process.
func runProducer[T any](ctx context.Context, producer func(context.Context, func(T) error) error, emit func(T) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewPanicError(r)
		}
	}()
	return producer(ctx, emit)
}
