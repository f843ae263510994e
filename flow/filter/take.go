package filter

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// Take creates a Transformer that passes through only the first n values,
// then stops consuming. The upstream producer is cancelled with
// core.ErrTruncated as the cause and unwinds at its next suspension
// point; values past the nth are never produced.
// If n <= 0, the stream is empty.
func Take[T any](n int) core.Transformer[T, T] {
	return core.Truncate(func(ctx context.Context, stop context.CancelCauseFunc, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			defer stop(core.ErrTruncated)
			if n <= 0 {
				return
			}

			taken := 0
			for res := range in {
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}

				if res.IsError() {
					return
				}
				taken++
				if taken >= n {
					return
				}
			}
		}()
		return out
	})
}

// TakeWhile creates a Transformer that passes through values while the
// predicate returns true. The first failing value is not emitted; the
// upstream is cancelled with core.ErrTruncated and nothing further is
// consumed.
func TakeWhile[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.Truncate(func(ctx context.Context, stop context.CancelCauseFunc, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			defer stop(core.ErrTruncated)
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				if !predicate(res.Value()) {
					return
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

// First creates a Transformer that only emits the first value from the
// stream. This is equivalent to Take(1).
func First[T any]() core.Transformer[T, T] {
	return Take[T](1)
}

// Nth creates a Transformer that only emits the value at index n
// (0-indexed), then stops the upstream. If the stream has fewer than n+1
// values, nothing is emitted.
func Nth[T any](n int) core.Transformer[T, T] {
	return core.Truncate(func(ctx context.Context, stop context.CancelCauseFunc, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			defer stop(core.ErrTruncated)
			if n < 0 {
				return
			}

			index := 0
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				if index == n {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}
				index++
			}
		}()
		return out
	})
}

// Skip creates a Transformer that drops the first n values, then passes
// through the rest. If n <= 0, all values are passed through.
func Skip[T any](n int) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			skipped := 0
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				if skipped < n {
					skipped++
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

// SkipWhile creates a Transformer that drops values while the predicate
// returns true. From the first failing value on, everything (including
// that value) is passed through; the predicate is not consulted again.
func SkipWhile[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			skipping := true
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				if skipping && predicate(res.Value()) {
					continue
				}
				skipping = false

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
