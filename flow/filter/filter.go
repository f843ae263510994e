// Package filter provides predicate-based stream operators built on top
// of the core flow abstractions. All operators are lazy, preserve value
// order, and forward a terminating error downstream before stopping.
package filter

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// Where creates a Transformer that only passes through values matching the
// predicate. Values that don't match are silently dropped.
func Where[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				if !predicate(res.Value()) {
					continue
				}

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

// Exclude creates a Transformer that filters out values matching the
// predicate. This is the inverse of Where.
func Exclude[T any](predicate func(T) bool) core.Transformer[T, T] {
	return Where(func(v T) bool { return !predicate(v) })
}

// MapWhere creates a Transformer that both filters and maps in a single
// pass. The function returns (value, true) to include the transformed
// value, or (_, false) to drop the item.
func MapWhere[IN, OUT any](fn func(IN) (OUT, bool)) core.Transformer[IN, OUT] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[IN]) <-chan core.Result[OUT] {
		out := make(chan core.Result[OUT])
		go func() {
			defer close(out)
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[OUT](res.Error()):
					}
					return
				}

				mapped, ok := fn(res.Value())
				if !ok {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(mapped):
				}
			}
		}()
		return out
	})
}

// MapNotNil maps each value through fn and drops items for which fn
// returns nil; non-nil results are emitted dereferenced.
func MapNotNil[IN, OUT any](fn func(IN) *OUT) core.Transformer[IN, OUT] {
	return MapWhere(func(v IN) (OUT, bool) {
		p := fn(v)
		if p == nil {
			var zero OUT
			return zero, false
		}
		return *p, true
	})
}
