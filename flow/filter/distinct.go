package filter

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// DistinctUntilChanged creates a Transformer that only emits a value when
// it differs from the immediately preceding one. Non-consecutive repeats
// still pass through; only runs of equal values are collapsed.
func DistinctUntilChanged[T comparable]() core.Transformer[T, T] {
	return DistinctUntilChangedBy(func(v T) T { return v })
}

// DistinctUntilChangedBy creates a Transformer that only emits a value
// when the key derived from it differs from the previous value's key.
func DistinctUntilChangedBy[T any, K comparable](keyFn func(T) K) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			var lastKey K
			first := true

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				key := keyFn(res.Value())
				if !first && key == lastKey {
					continue
				}
				first = false
				lastKey = key

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}()
		return out
	})
}
