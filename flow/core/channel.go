package core

import (
	"context"
	"iter"
)

// Emitter represents a function that produces a stream of results of type OUT.
// It is a level of abstraction over channels, just under Stream. Emitters
// answer the question: "How is the stream's data produced?".
//
// The returned channel must be unbuffered so that every emission is a
// rendezvous: the producer stays suspended until the consumer has taken
// the value. Cancellation is observed at those suspension points.
type Emitter[OUT any] func(context.Context) <-chan Result[OUT]

func Emit[OUT any](emitter func(context.Context) <-chan Result[OUT]) Emitter[OUT] {
	return emitter
}

func (e Emitter[OUT]) Emit(ctx context.Context) <-chan Result[OUT] {
	return e(ctx)
}

func (e Emitter[OUT]) Collect(ctx context.Context) []Result[OUT] {
	return Collect(ctx, e)
}

func (e Emitter[OUT]) All(ctx context.Context) iter.Seq[Result[OUT]] {
	return All(ctx, e)
}

// Transmitter represents a function that transforms a stream of results
// of type IN into a stream of results of type OUT. It is a level of abstraction
// over channels, just under Transformer. Transmitters answer the question:
// "How is the stream's data transformed?".
type Transmitter[IN, OUT any] func(context.Context, <-chan Result[IN]) <-chan Result[OUT]

func Transmit[IN, OUT any](transmitter func(context.Context, <-chan Result[IN]) <-chan Result[OUT]) Transmitter[IN, OUT] {
	return transmitter
}

func (t Transmitter[IN, OUT]) Apply(ctx context.Context, in Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		return t(ctx, in.Emit(ctx))
	})
}

// Truncator is a Transmitter variant for stages that may stop consuming
// before the upstream is exhausted, such as Take. It receives a stop
// function bound to the upstream's derived context; calling it releases a
// producer parked on its unbuffered send and lets it unwind cooperatively.
//
// The truncator owns stop and must call it (usually via defer) before
// closing its output, even on natural exhaustion, so the derived context
// is always released. Passing ErrTruncated as the cause lets producers
// distinguish a deliberate stop from an external cancellation.
type Truncator[IN, OUT any] func(ctx context.Context, stop context.CancelCauseFunc, in <-chan Result[IN]) <-chan Result[OUT]

func Truncate[IN, OUT any](truncator func(context.Context, context.CancelCauseFunc, <-chan Result[IN]) <-chan Result[OUT]) Truncator[IN, OUT] {
	return truncator
}

func (t Truncator[IN, OUT]) Apply(ctx context.Context, in Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		upstream, stop := context.WithCancelCause(ctx)
		return t(ctx, stop, in.Emit(upstream))
	})
}
