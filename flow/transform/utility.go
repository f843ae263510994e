// Package transform provides stream reshaping operators built on top of
// the core flow abstractions.
package transform

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// Indexed pairs a stream value with its 0-based position in the run.
type Indexed[T any] struct {
	Index int
	Value T
}

// WithIndex creates a Transformer that wraps each value with its 0-based
// index. Only values are counted; a terminating error carries no index.
func WithIndex[T any]() core.Transformer[T, Indexed[T]] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[Indexed[T]] {
		out := make(chan core.Result[Indexed[T]])
		go func() {
			defer close(out)

			index := 0
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[Indexed[T]](res.Error()):
					}
					return
				}

				indexed := Indexed[T]{
					Index: index,
					Value: res.Value(),
				}
				index++

				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(indexed):
				}
			}
		}()
		return out
	})
}

// Expand creates a Transformer that hands each incoming value to fn
// together with an emit callback. fn may call emit any number of times;
// every call is a fully backpressured handover to the consumer, so fn
// suspends until the downstream is ready. An error from fn (or from a
// refused emit after cancellation) ends the stage.
//
// This is the per-value generalization of Create's producer contract:
// Map and FlatMap are the 1:1 and 1:slice special cases.
func Expand[IN, OUT any](fn func(in IN, emit func(OUT) error) error) core.Transformer[IN, OUT] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[IN]) <-chan core.Result[OUT] {
		out := make(chan core.Result[OUT])
		go func() {
			defer close(out)

			emit := func(v OUT) error {
				select {
				case <-ctx.Done():
					return context.Cause(ctx)
				case out <- core.Ok(v):
					return nil
				}
			}

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[OUT](res.Error()):
					}
					return
				}

				err := expandValue(fn, res.Value(), emit)
				if err == nil {
					continue
				}
				if ctx.Err() != nil {
					// cooperative unwind, not a failure
					return
				}
				select {
				case <-ctx.Done():
				case out <- core.Err[OUT](err):
				}
				return
			}
		}()
		return out
	})
}

// expandValue runs fn for a single value, converting a panic into an error.
func expandValue[IN, OUT any](fn func(IN, func(OUT) error) error, value IN, emit func(OUT) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewPanicError(r)
		}
	}()
	return fn(value, emit)
}
