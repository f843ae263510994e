// Package timing provides time-based sources and operators for streams.
//
// None of these implement a timeout. Ending a slow run is the caller's
// job, via context deadlines on the terminal operation.
package timing

import (
	"context"
	"time"

	"github.com/avollmer/coldflow/flow/core"
)

// Sleep blocks for d or until ctx is cancelled, whichever comes first.
// It returns nil after a full sleep and the cancellation cause
// otherwise. Producers use it as an explicit suspension point between
// emissions.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}

// Delay creates a Transformer that holds each value for the specified
// duration before passing it on. A terminating error is forwarded
// without delay.
func Delay[T any](duration time.Duration) core.Transformer[T, T] {
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

				if err := Sleep(ctx, duration); err != nil {
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

// After creates an Emitter that emits the fire time once the duration
// has elapsed, then completes.
func After(d time.Duration) core.Emitter[time.Time] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[time.Time] {
		out := make(chan core.Result[time.Time])
		go func() {
			defer close(out)
			timer := time.NewTimer(d)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return
			case t := <-timer.C:
				select {
				case <-ctx.Done():
				case out <- core.Ok(t):
				}
			}
		}()
		return out
	})
}

// AfterValue creates an Emitter that emits the specified value once the
// duration has elapsed, then completes.
func AfterValue[T any](d time.Duration, value T) core.Emitter[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			timer := time.NewTimer(d)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				select {
				case <-ctx.Done():
				case out <- core.Ok(value):
				}
			}
		}()
		return out
	})
}

// Interval creates an Emitter that emits sequential integers at fixed
// intervals, starting with 0 after the first tick. The stream continues
// until cancellation.
func Interval(d time.Duration) core.Emitter[int] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[int] {
		out := make(chan core.Result[int])
		go func() {
			defer close(out)
			ticker := time.NewTicker(d)
			defer ticker.Stop()

			i := 0
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					select {
					case <-ctx.Done():
						return
					case out <- core.Ok(i):
						i++
					}
				}
			}
		}()
		return out
	})
}
