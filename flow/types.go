// Package flow provides a cold stream abstraction for building lazy,
// cancellable, strictly backpressured data pipelines in Go.
//
// A stream is a description of how values are produced; nothing runs
// until a terminal operation starts a run, and every run re-executes the
// description from scratch. Producers and consumers alternate over
// unbuffered channels, so a producer is never more than one value ahead
// of its consumer.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The flow/core subpackage contains
// low-level abstractions that are rarely needed directly.
package flow

import (
	"context"
	"iter"

	"github.com/avollmer/coldflow/flow/core"
)

// Type aliases for core stream abstractions.
// These allow users to work with the framework without importing core directly.
type (
	// Result represents the outcome of one emission: a value or the
	// run's terminating error.
	Result[T any] = core.Result[T]

	// Stream represents a cold flow of data with methods for processing.
	Stream[T any] = core.Stream[T]

	// Transformer transforms a Stream of type IN into a Stream of type OUT.
	Transformer[IN, OUT any] = core.Transformer[IN, OUT]

	// Emitter produces a channel of Results and implements Stream.
	Emitter[T any] = core.Emitter[T]

	// Transmitter transforms one channel of Results into another and implements Transformer.
	Transmitter[IN, OUT any] = core.Transmitter[IN, OUT]

	// Truncator is a Transmitter that may stop consuming its upstream early.
	Truncator[IN, OUT any] = core.Truncator[IN, OUT]

	// Mapper transforms individual items (1:1 cardinality) and implements Transformer.
	Mapper[IN, OUT any] = core.Mapper[IN, OUT]

	// FlatMapper transforms individual items (1:N cardinality) and implements Transformer.
	FlatMapper[IN, OUT any] = core.FlatMapper[IN, OUT]

	// Predicate reports whether a value passes a filtering stage.
	Predicate[T any] = core.Predicate[T]

	// Hooks holds typed observation callbacks invoked by terminal drivers.
	Hooks[T any] = core.Hooks[T]

	// ProducerError wraps an error raised inside a producer procedure.
	ProducerError = core.ProducerError
)

// Error kinds surfaced by terminal operations.
var (
	// ErrEmptyStream reports that a driver required at least one value
	// and the stream completed without producing any.
	ErrEmptyStream = core.ErrEmptyStream

	// ErrMultipleValues reports that Single saw a second value.
	ErrMultipleValues = core.ErrMultipleValues

	// ErrTruncated is the cancellation cause seen by producers when a
	// truncating stage (Take, TakeWhile) stops the upstream deliberately.
	ErrTruncated = core.ErrTruncated

	// ErrLaunchCancelled is the cancellation cause set by Handle.Cancel.
	ErrLaunchCancelled = core.ErrLaunchCancelled
)

// IsProducerError reports whether err is (or wraps) a ProducerError.
func IsProducerError(err error) bool {
	return core.IsProducerError(err)
}

// Result constructors - wrappers around core functions.

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// Err creates an error Result; the error terminates the run once it
// reaches a terminal operation.
func Err[T any](err error) Result[T] {
	return core.Err[T](err)
}

// NewResult creates a Result with explicit control over both fields.
func NewResult[T any](value T, err error) Result[T] {
	return core.NewResult(value, err)
}

// Mapper/FlatMapper constructors.

// Map creates a Mapper from a simple transformation function.
func Map[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return core.Map(mapFunc)
}

// FlatMap creates a FlatMapper from a function returning a slice.
func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return core.FlatMap(flatMapFunc)
}

// Terminal operations. Each call starts exactly one run.

// Each drives every emission through fn; the producer stays suspended
// until fn returns. A non-nil error from fn cancels the run.
func Each[T any](ctx context.Context, in Stream[T], fn func(T) error) error {
	return core.Each(ctx, in, fn)
}

// Slice collects all stream values into a slice.
func Slice[T any](ctx context.Context, in Stream[T]) ([]T, error) {
	return core.Slice(ctx, in)
}

// Set collects all distinct stream values, preserving first-seen order.
func Set[T comparable](ctx context.Context, in Stream[T]) ([]T, error) {
	return core.Set(ctx, in)
}

// First returns the first value from the stream and cancels the rest of
// the run.
func First[T any](ctx context.Context, in Stream[T]) (T, error) {
	return core.First(ctx, in)
}

// FirstMatch returns the first value satisfying pred.
func FirstMatch[T any](ctx context.Context, in Stream[T], pred func(T) bool) (T, error) {
	return core.FirstMatch(ctx, in, pred)
}

// Last waits for completion and returns the last value observed.
func Last[T any](ctx context.Context, in Stream[T]) (T, error) {
	return core.Last(ctx, in)
}

// Single expects the stream to emit exactly one value.
func Single[T any](ctx context.Context, in Stream[T]) (T, error) {
	return core.Single(ctx, in)
}

// Fold sequentially reduces all values with fn, starting from initial.
func Fold[T, ACC any](ctx context.Context, in Stream[T], initial ACC, fn func(ACC, T) ACC) (ACC, error) {
	return core.Fold(ctx, in, initial, fn)
}

// Run executes the stream for side effects only.
func Run[T any](ctx context.Context, in Stream[T]) error {
	return core.Run(ctx, in)
}

// Collect gathers all Results (including errors) into a slice.
func Collect[T any](ctx context.Context, stream Stream[T]) []Result[T] {
	return core.Collect(ctx, stream)
}

// All returns an iterator over all Results in the stream.
func All[T any](ctx context.Context, stream Stream[T]) iter.Seq[Result[T]] {
	return core.All(ctx, stream)
}

// Emitter/Transmitter constructors.

// Emit creates an Emitter from a channel-producing function.
func Emit[T any](emitter func(context.Context) <-chan Result[T]) Emitter[T] {
	return core.Emit(emitter)
}

// Transmit creates a Transmitter from a channel transformation function.
func Transmit[IN, OUT any](transmitter func(context.Context, <-chan Result[IN]) <-chan Result[OUT]) Transmitter[IN, OUT] {
	return core.Transmit(transmitter)
}

// WithHooks attaches typed observation hooks to the context; terminal
// operations invoke them once per run, in FIFO registration order.
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	return core.WithHooks(ctx, hooks)
}
