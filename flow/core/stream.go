// package core defines the core abstractions for cold stream processing,
// including streams, transformers, emitters, and result handling.
// It provides the foundational building blocks for creating composable
// pipelines with strict one-in-flight delivery.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other flow packages.
package core

import (
	"context"
	"iter"
)

// Stream represents a cold flow of data. It is a higher-level abstraction
// than channels, providing methods for processing the stream's data.
// Along with Transformer, it enables building complex data processing
// pipelines.
// Stream answers the question: "What operations will produce the stream's data?".
//
// A Stream is cold: no work happens until Emit is called, and each call
// to Emit re-runs the producing operations from the start.
type Stream[OUT any] interface {
	Emit(context.Context) <-chan Result[OUT]

	Collect(context.Context) []Result[OUT]
	All(context.Context) iter.Seq[Result[OUT]]
}

func Collect[OUT any](ctx context.Context, stream Stream[OUT]) []Result[OUT] {
	var results []Result[OUT]
	for res := range stream.Emit(ctx) {
		results = append(results, res)
	}
	return results
}

// All adapts a stream to a range-over-func iterator. Breaking out of the
// range cancels the derived context so the producer unwinds instead of
// staying parked on its unbuffered send.
func All[OUT any](ctx context.Context, stream Stream[OUT]) iter.Seq[Result[OUT]] {
	return func(yield func(Result[OUT]) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		for res := range stream.Emit(ctx) {
			if !yield(res) {
				return
			}
		}
	}
}

// Transformer represents a data processing unit that transforms
// a Stream of type IN into a Stream of type OUT. Transformers can
// be composed to build complex data processing pipelines.
// They answer the question: "What operations are being applied to the stream's data?".
type Transformer[IN, OUT any] interface {
	Apply(context.Context, Stream[IN]) Stream[OUT]
}
