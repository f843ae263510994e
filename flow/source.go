package flow

import (
	"context"
	"iter"

	"github.com/avollmer/coldflow/flow/core"
)

// Of creates a Stream that emits the given values in order, then
// completes. Construction performs no work; the values are handed over
// one at a time when a run starts.
func Of[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// FromSlice creates a Stream that emits each element from the given slice.
// The stream completes after all elements have been emitted. Every
// handover is a rendezvous with the consumer; the producer goroutine
// holds no value the consumer has not asked for.
func FromSlice[T any](items []T) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			for _, item := range items {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(item):
				}
			}
		}()
		return out
	})
}

// FromChannel creates a Stream that emits values received from the given channel.
// The stream completes when the input channel is closed.
// The caller is responsible for closing the input channel.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-ch:
					if !ok {
						return
					}
					select {
					case <-ctx.Done():
						return
					case out <- Ok(item):
					}
				}
			}
		}()
		return out
	})
}

// FromIter creates a Stream from a Go 1.23+ iterator sequence.
// The stream completes when the iterator is exhausted.
func FromIter[T any](seq iter.Seq[T]) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			for item := range seq {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(item):
				}
			}
		}()
		return out
	})
}

// Empty creates a Stream that emits no values and completes immediately.
func Empty[T any]() Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		close(out)
		return out
	})
}

// Just creates a Stream that emits a single value and then completes.
func Just[T any](value T) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			select {
			case <-ctx.Done():
			case out <- Ok(value):
			}
		}()
		return out
	})
}

// Generate creates a Stream that lazily generates values using the provided
// function. The function should return the next value and true to continue,
// or the zero value and false to signal completion. A returned error ends
// the stream with that error.
func Generate[T any](fn func() (T, bool, error)) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			for {
				value, ok, err := fn()
				if err != nil {
					select {
					case <-ctx.Done():
					case out <- core.Err[T](err):
					}
					return
				}
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- Ok(value):
				}
			}
		}()
		return out
	})
}

// Repeat creates a Stream that emits the same value n times.
// If n is negative, the stream repeats indefinitely until context cancellation.
func Repeat[T any](value T, n int) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			count := 0
			for n < 0 || count < n {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(value):
					count++
				}
			}
		}()
		return out
	})
}

// Range creates a Stream that emits integers from start (inclusive) to end (exclusive).
// If start >= end, an empty stream is returned.
func Range(start, end int) Stream[int] {
	return Emit(func(ctx context.Context) <-chan Result[int] {
		out := make(chan Result[int])
		go func() {
			defer close(out)
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(i):
				}
			}
		}()
		return out
	})
}

// RangeStep creates a Stream that emits integers from start to end with the given step.
// If step is positive, emits start, start+step, start+2*step, ... (while < end)
// If step is negative, emits start, start+step, start+2*step, ... (while > end)
// If step is zero or the direction is invalid, an empty stream is returned.
func RangeStep(start, end, step int) Stream[int] {
	return Emit(func(ctx context.Context) <-chan Result[int] {
		out := make(chan Result[int])
		go func() {
			defer close(out)

			// Validate step direction
			if step == 0 {
				return
			}
			if step > 0 && start >= end {
				return
			}
			if step < 0 && start <= end {
				return
			}

			for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(i):
				}
			}
		}()
		return out
	})
}

// KeyValue represents a key-value pair from a map.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates a Stream that emits key-value pairs from the given map.
// The order of emission is non-deterministic (as per Go map iteration).
func FromMap[K comparable, V any](m map[K]V) Stream[KeyValue[K, V]] {
	return Emit(func(ctx context.Context) <-chan Result[KeyValue[K, V]] {
		out := make(chan Result[KeyValue[K, V]])
		go func() {
			defer close(out)
			for k, v := range m {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(KeyValue[K, V]{Key: k, Value: v}):
				}
			}
		}()
		return out
	})
}

// FromError creates a Stream that immediately emits an error and completes.
func FromError[T any](err error) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			select {
			case <-ctx.Done():
			case out <- core.Err[T](err):
			}
		}()
		return out
	})
}

// Never creates a Stream that never emits any values and never completes.
// The stream only terminates when the context is cancelled.
func Never[T any]() Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			<-ctx.Done()
		}()
		return out
	})
}

// Defer creates a Stream lazily, calling the factory function at the start
// of each run. This allows for late binding of stream creation.
func Defer[T any](factory func() Stream[T]) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		stream := factory()
		return stream.Emit(ctx)
	})
}

// Concat creates a Stream that emits all values from the first stream,
// then all values from the second stream, and so on. An error from any
// stream ends the whole concatenation.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			for _, stream := range streams {
				for res := range stream.Emit(ctx) {
					select {
					case <-ctx.Done():
						return
					case out <- res:
					}
					if res.IsError() {
						return
					}
				}
			}
		}()
		return out
	})
}

// StartWith creates a Transformer that prepends values before the source stream.
func StartWith[T any](values ...T) Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)

			// Emit prepended values first
			for _, v := range values {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(v):
				}
			}

			// Then pass through source values
			for res := range in {
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
				if res.IsError() {
					return
				}
			}
		}()
		return out
	})
}

// EndWith creates a Transformer that appends values after the source stream
// completes. If the source ends with an error nothing is appended.
func EndWith[T any](values ...T) Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)

			// Pass through source values first
			for res := range in {
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
				if res.IsError() {
					return
				}
			}

			// Emit appended values after source completes
			for _, v := range values {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(v):
				}
			}
		}()
		return out
	})
}

// Unfold creates a Stream by unfolding a seed value.
// The function receives the current state and returns:
// - The value to emit
// - The next state
// - Whether to continue (false = complete)
// - An error, which ends the stream with that error
func Unfold[T, S any](seed S, fn func(S) (T, S, bool, error)) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			state := seed
			for {
				value, nextState, ok, err := fn(state)
				if err != nil {
					select {
					case <-ctx.Done():
					case out <- core.Err[T](err):
					}
					return
				}
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- Ok(value):
				}
				state = nextState
			}
		}()
		return out
	})
}

// Iterate creates a Stream by repeatedly applying a function to a value.
// Emits seed, fn(seed), fn(fn(seed)), ... indefinitely until context cancellation.
func Iterate[T any](seed T, fn func(T) T) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			current := seed
			for {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(current):
					current = fn(current)
				}
			}
		}()
		return out
	})
}

// IterateN creates a Stream that emits seed, fn(seed), fn(fn(seed)), ... for n iterations.
func IterateN[T any](seed T, fn func(T) T, n int) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			current := seed
			for i := 0; i < n; i++ {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(current):
					current = fn(current)
				}
			}
		}()
		return out
	})
}
