// Package aggregate provides accumulating stream operators built on top
// of the core flow abstractions.
package aggregate

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// Fold creates a Transformer that folds all values into a single
// accumulated result, emitted when the stream completes. The initial
// value is emitted as-is for an empty stream. A terminating error is
// forwarded instead; no partial accumulation is emitted after an error.
func Fold[T, R any](initial R, folder func(acc R, item T) R) core.Transformer[T, R] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[R] {
		out := make(chan core.Result[R])
		go func() {
			defer close(out)
			acc := initial

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[R](res.Error()):
					}
					return
				}
				acc = folder(acc, res.Value())
			}

			select {
			case <-ctx.Done():
			case out <- core.Ok(acc):
			}
		}()
		return out
	})
}

// Scan creates a Transformer that emits every intermediate accumulated
// value. Like Fold, but emits after each value rather than only at the
// end. The initial value itself is not emitted.
func Scan[T, R any](initial R, scanner func(acc R, item T) R) core.Transformer[T, R] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[R] {
		out := make(chan core.Result[R])
		go func() {
			defer close(out)
			acc := initial

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[R](res.Error()):
					}
					return
				}

				acc = scanner(acc, res.Value())
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(acc):
				}
			}
		}()
		return out
	})
}

// Count creates a Transformer that counts the values in the stream and
// emits the single total when the stream completes.
func Count[T any]() core.Transformer[T, int] {
	return Fold[T, int](0, func(acc int, _ T) int {
		return acc + 1
	})
}
